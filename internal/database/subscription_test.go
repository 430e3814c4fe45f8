package database

import (
	"context"
	"testing"
	"time"

	"service-plans-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSubscriptionsAnnotatesOwnerAndCourses(t *testing.T) {
	setupTestDB(t)

	alice := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, DB.Create(&alice).Error)
	bob := models.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, DB.Create(&bob).Error)

	for _, title := range []string{"Algebra", "Biology"} {
		require.NoError(t, CreateCourse(context.Background(), &models.Course{OwnerID: alice.ID, Title: title}))
	}

	rows, total, err := ListSubscriptions(ListSubscriptionsOptions{PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)

	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, "alice@example.com", rows[0].Email)
	assert.EqualValues(t, 2, rows[0].CoursesCount)
	assert.Equal(t, "bob", rows[1].Username)
	assert.EqualValues(t, 0, rows[1].CoursesCount)
}

func TestListSubscriptionsFilterAndSearch(t *testing.T) {
	setupTestDB(t)

	alice := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, DB.Create(&alice).Error)
	bob := models.User{Username: "bob", Email: "bob@school.org"}
	require.NoError(t, DB.Create(&bob).Error)

	subscription, err := GetSubscriptionByUserID(bob.ID)
	require.NoError(t, err)
	subscription.IsPremium = true
	require.NoError(t, SaveSubscription(context.Background(), subscription))

	premium := true
	rows, total, err := ListSubscriptions(ListSubscriptionsOptions{IsPremium: &premium, PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob", rows[0].Username)

	rows, total, err = ListSubscriptions(ListSubscriptionsOptions{Search: "school.org", PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob", rows[0].Username)

	rows, total, err = ListSubscriptions(ListSubscriptionsOptions{Search: "ali", PageSize: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Username)
}

func TestListSubscriptionsPagination(t *testing.T) {
	setupTestDB(t)

	createLegacyUsers(t, 5)
	_, err := BackfillSubscriptions(context.Background())
	require.NoError(t, err)

	rows, total, err := ListSubscriptions(ListSubscriptionsOptions{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, rows, 2)

	rows, _, err = ListSubscriptions(ListSubscriptionsOptions{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSubscriptionHistoryNewestFirst(t *testing.T) {
	setupTestDB(t)

	user := models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, DB.Create(&user).Error)

	subscription, err := GetSubscriptionByUserID(user.ID)
	require.NoError(t, err)

	subscription.IsPremium = true
	subscription.Comment = "first upgrade"
	require.NoError(t, SaveSubscription(context.Background(), subscription))

	time.Sleep(5 * time.Millisecond)

	subscription.IsPremium = false
	subscription.Comment = "downgraded"
	require.NoError(t, SaveSubscription(context.Background(), subscription))

	history, err := GetSubscriptionHistory(subscription.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, "downgraded", history[0].Comment)
	assert.False(t, history[0].IsPremium)
	assert.Equal(t, "first upgrade", history[1].Comment)
	assert.True(t, history[1].IsPremium)
	assert.Empty(t, history[2].Comment)

	for i := 1; i < len(history); i++ {
		assert.False(t, history[i-1].Created.Before(history[i].Created))
	}

	latest, err := GetLatestSubscriptionHistory(subscription.ID)
	require.NoError(t, err)
	assert.Equal(t, history[0].ID, latest.ID)
}
