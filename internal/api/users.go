package api

import (
	"errors"
	"net/http"
	"strconv"

	"service-plans-api/internal/database"
	"service-plans-api/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateUserRequest represents create user request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// CreateUser creates a user account stand-in
// POST /api/users
// Creating an account provisions a default service subscription via the
// lifecycle hook.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := database.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Username already taken",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create user: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    user,
	})
}

// CreateCourseRequest represents create course request
type CreateCourseRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateCourse attaches an owned course to a user
// POST /api/users/:id/courses
func CreateCourse(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	if _, err := database.GetUserByID(userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	course := &models.Course{
		OwnerID: userID,
		Title:   req.Title,
	}
	if err := database.CreateCourse(c.Request.Context(), course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create course: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    course,
	})
}

// parseIDParam parses the :id path parameter, writing a 400 response on failure.
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid id parameter",
		})
		return 0, err
	}
	return uint(id), nil
}
