package models

import "time"

// UnlimitedLinks is the sentinel meaning "no ceiling". Consumers must
// never treat it as a literal count.
const UnlimitedLinks = -1

// Plan is a global catalog row. Prices are integer minor-currency
// units (paise).
type Plan struct {
	BaseModel
	Name             string        `gorm:"not null" json:"name"`
	Slug             string        `gorm:"uniqueIndex;not null" json:"slug"`
	PriceMonthly     int           `gorm:"not null" json:"price_monthly"`
	PriceYearly      int           `gorm:"not null" json:"price_yearly"`
	LinkLimit        int           `gorm:"not null" json:"link_limit"` // -1 = unlimited
	AnalyticsEnabled bool          `gorm:"default:false;not null" json:"analytics_enabled"`
	Features         []PlanFeature `gorm:"foreignKey:PlanID" json:"features"`
}

// PlanFeature is one marketing bullet of a plan, kept in its own table
// and ordered by Position.
type PlanFeature struct {
	BaseModel
	PlanID   string `gorm:"type:uuid;not null;index" json:"plan_id"`
	Label    string `gorm:"not null" json:"label"`
	Position int    `gorm:"default:0;not null" json:"position"`
}

type Subscription struct {
	BaseModel
	UserID string             `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID string             `gorm:"type:uuid;not null;index" json:"plan_id"`
	Status SubscriptionStatus `gorm:"type:varchar(20);default:'active';not null" json:"status"`
	// At most one active subscription per user is assumed by all read
	// paths; not enforced by a DB constraint.
	BillingCycle           BillingCycle `gorm:"type:varchar(10);not null" json:"billing_cycle"`
	CurrentPeriodStart     time.Time    `gorm:"not null" json:"current_period_start"`
	CurrentPeriodEnd       time.Time    `gorm:"not null" json:"current_period_end"`
	CancelledAt            *time.Time   `json:"cancelled_at"`
	RazorpaySubscriptionID string       `json:"razorpay_subscription_id"`

	// Relations
	Plan Plan `gorm:"foreignKey:PlanID" json:"plan"`
}

// Payment records a single gateway transaction for a subscription.
type Payment struct {
	BaseModel
	SubscriptionID    string        `gorm:"type:uuid;not null;index" json:"subscription_id"`
	RazorpayOrderID   string        `gorm:"not null" json:"razorpay_order_id"`
	RazorpayPaymentID string        `gorm:"not null" json:"razorpay_payment_id"`
	Amount            int           `gorm:"not null" json:"amount"`
	Status            PaymentStatus `gorm:"type:varchar(20);default:'pending';not null" json:"status"`
	PaidAt            *time.Time    `json:"paid_at"`

	// Relations
	Subscription Subscription `gorm:"foreignKey:SubscriptionID" json:"-"`
}
