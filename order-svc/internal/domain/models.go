package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type OrderIntent struct {
	FoodItem             string   `json:"food_item"`
	Restaurant           string   `json:"restaurant,omitempty"`
	Cuisine              string   `json:"cuisine,omitempty"`
	DietaryRestrictions  []string `json:"dietary_restrictions"`
	QuickOrder           bool     `json:"quick_order"`
	DeliveryInstructions string   `json:"delivery_instructions,omitempty"`
	Confidence           float64  `json:"confidence"`
}

// Clone returns a deep copy so a stored last order can be reused without
// aliasing the profile's slices.
func (i OrderIntent) Clone() OrderIntent {
	out := i
	out.DietaryRestrictions = append([]string{}, i.DietaryRestrictions...)
	return out
}

// PriceTier is an ordinal price bucket. It travels as "$", "$$" or "$$$".
type PriceTier int

const (
	TierUnknown PriceTier = iota
	TierLow
	TierMedium
	TierHigh
)

func ParsePriceTier(s string) (PriceTier, error) {
	switch strings.TrimSpace(s) {
	case "$":
		return TierLow, nil
	case "$$":
		return TierMedium, nil
	case "$$$":
		return TierHigh, nil
	}
	return TierUnknown, fmt.Errorf("unknown price tier %q", s)
}

func (t PriceTier) String() string {
	if t >= TierLow && t <= TierHigh {
		return strings.Repeat("$", int(t))
	}
	return "unknown"
}

func (t PriceTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *PriceTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriceTier(s)
	if err != nil {
		*t = TierUnknown
		return nil
	}
	*t = parsed
	return nil
}

type RestaurantCandidate struct {
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	Cuisine   string    `json:"cuisine"`
	PriceTier PriceTier `json:"price_tier"`
}

type OrderStatus string

const (
	StatusSuccess OrderStatus = "success"
	StatusPending OrderStatus = "pending"
	StatusFailed  OrderStatus = "failed"
)

type OrderResult struct {
	Status      OrderStatus `json:"status"`
	Restaurant  string      `json:"restaurant"`
	Items       []string    `json:"items"`
	DeepLink    string      `json:"deep_link,omitempty"`
	TrackingURL string      `json:"tracking_url,omitempty"`
}

type FavoriteOrder struct {
	Restaurant  string    `json:"restaurant"`
	FoodItem    string    `json:"food_item"`
	LastOrdered time.Time `json:"last_ordered"`
	OrderCount  int       `json:"order_count"`
}

type UserProfile struct {
	UID                 string          `json:"uid"`
	DeliveryAddress     string          `json:"delivery_address,omitempty"`
	Phone               string          `json:"phone,omitempty"`
	FavoriteRestaurants []string        `json:"favorite_restaurants"`
	FavoriteOrders      []FavoriteOrder `json:"favorite_orders"`
	DietaryPreferences  []string        `json:"dietary_preferences"`
	LastOrder           *OrderIntent    `json:"last_order,omitempty"`
}

func NewUserProfile(uid string) *UserProfile {
	return &UserProfile{
		UID:                 uid,
		FavoriteRestaurants: []string{},
		FavoriteOrders:      []FavoriteOrder{},
		DietaryPreferences:  []string{},
	}
}

// ProfileUpdate carries the fields accepted by profile setup. Nil fields are
// left untouched.
type ProfileUpdate struct {
	DeliveryAddress     *string  `json:"delivery_address"`
	Phone               *string  `json:"phone"`
	FavoriteRestaurants []string `json:"favorite_restaurants"`
	DietaryPreferences  []string `json:"dietary_preferences"`
}

type Preferences struct {
	FavoriteCuisines    []string `json:"favorite_cuisines"`
	FavoriteRestaurants []string `json:"favorite_restaurants"`
	DietaryPreferences  []string `json:"dietary_preferences"`
	FavoriteDishes      []string `json:"favorite_dishes"`
}

// EmptyPreferences has every list present and empty.
func EmptyPreferences() Preferences {
	return Preferences{
		FavoriteCuisines:    []string{},
		FavoriteRestaurants: []string{},
		DietaryPreferences:  []string{},
		FavoriteDishes:      []string{},
	}
}

func (p Preferences) IsEmpty() bool {
	return len(p.FavoriteCuisines) == 0 &&
		len(p.FavoriteRestaurants) == 0 &&
		len(p.DietaryPreferences) == 0 &&
		len(p.FavoriteDishes) == 0
}

type SessionContext map[string]any

// UID returns the user id stored in the session, if any.
func (s SessionContext) UID() string {
	uid, _ := s["uid"].(string)
	return uid
}
