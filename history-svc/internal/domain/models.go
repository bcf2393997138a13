package domain

import "time"

const EventOrderPlaced = "order_placed"

// OrderEvent mirrors what order-svc publishes after every placement.
type OrderEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	UID         string    `json:"uid"`
	Restaurant  string    `json:"restaurant"`
	FoodItem    string    `json:"food_item"`
	Status      string    `json:"status"`
	DeepLink    string    `json:"deep_link,omitempty"`
	TrackingURL string    `json:"tracking_url,omitempty"`
	QuickOrder  bool      `json:"quick_order"`
	Timestamp   time.Time `json:"timestamp"`
}

type OrderRecord struct {
	ID          string    `json:"id"`
	UID         string    `json:"uid"`
	Restaurant  string    `json:"restaurant"`
	FoodItem    string    `json:"food_item"`
	Status      string    `json:"status"`
	DeepLink    string    `json:"deep_link,omitempty"`
	TrackingURL string    `json:"tracking_url,omitempty"`
	QuickOrder  bool      `json:"quick_order"`
	OrderedAt   time.Time `json:"ordered_at"`
}

type RestaurantPopularity struct {
	Restaurant string  `json:"restaurant"`
	Orders     float64 `json:"orders"`
}

type Period string

const (
	PeriodToday Period = "today"
	PeriodAll   Period = "all"
)
