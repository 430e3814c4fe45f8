package models

// ServicePlan 服务套餐描述（内存常量，不落库）
// Temporary value type for service plans, to be replaced with a persisted model
// once a real plan catalog exists.
type ServicePlan struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	MonthlyPrice int64  `json:"monthly_price"`
	YearlyPrice  int64  `json:"yearly_price"`
	Currency     string `json:"currency"`
	IsDefault    bool   `json:"is_default"`
	SequenceNo   int    `json:"sequence_no"` // 展示顺序
}

var (
	// BasicServicePlan 免费套餐（默认）
	BasicServicePlan = ServicePlan{
		Name:        "Basic",
		Description: "Free service plan",
		IsDefault:   true,
		SequenceNo:  1,
	}

	// PremiumServicePlan 付费套餐
	PremiumServicePlan = ServicePlan{
		Name:        "Premium",
		Description: "Paid service plan",
		// dummy price values until the plan catalog lands
		IsDefault:  false,
		SequenceNo: 2,
	}
)

// PlanForTier maps the subscription premium flag to its plan descriptor.
func PlanForTier(isPremium bool) ServicePlan {
	if isPremium {
		return PremiumServicePlan
	}
	return BasicServicePlan
}

// DefaultPlan returns the plan assigned to new subscriptions.
func DefaultPlan() ServicePlan {
	return BasicServicePlan
}

// AllPlans returns every plan descriptor in display order.
func AllPlans() []ServicePlan {
	return []ServicePlan{BasicServicePlan, PremiumServicePlan}
}
