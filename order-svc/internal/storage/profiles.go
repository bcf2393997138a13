package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"foodvoice/order-svc/internal/domain"

	"github.com/rs/zerolog"
)

const (
	MaxFavoriteOrders = 10
	DefaultSessionTTL = time.Hour
)

// ProfileStore keeps user profiles and session context on a KeyValue.
// Read-modify-write operations are serialized per uid within this process;
// separate replicas sharing one redis are not coordinated.
type ProfileStore struct {
	kv     KeyValue
	locks  *KeyedMutex
	now    func() time.Time
	logger zerolog.Logger
}

func NewProfileStore(kv KeyValue, logger zerolog.Logger) *ProfileStore {
	return &ProfileStore{
		kv:     kv,
		locks:  NewKeyedMutex(),
		now:    time.Now,
		logger: logger.With().Str("component", "profile_store").Logger(),
	}
}

// WithClock replaces the time source used for last_ordered stamps.
func (s *ProfileStore) WithClock(now func() time.Time) *ProfileStore {
	s.now = now
	return s
}

func ProfileKey(uid string) string {
	return "user_profile:" + uid
}

func SessionKey(sessionID string) string {
	return "session:" + sessionID
}

// GetProfile upserts on read: a missing profile comes back empty with only
// the uid set. On a read or decode error the fresh profile is returned too.
func (s *ProfileStore) GetProfile(ctx context.Context, uid string) (*domain.UserProfile, error) {
	data, err := s.kv.Get(ctx, ProfileKey(uid))
	if errors.Is(err, ErrNotFound) {
		return domain.NewUserProfile(uid), nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("uid", uid).Msg("failed to read profile")
		return domain.NewUserProfile(uid), fmt.Errorf("read profile %s: %w", uid, err)
	}

	profile := domain.NewUserProfile(uid)
	if err := json.Unmarshal(data, profile); err != nil {
		s.logger.Warn().Err(err).Str("uid", uid).Msg("failed to decode profile")
		return domain.NewUserProfile(uid), fmt.Errorf("decode profile %s: %w", uid, err)
	}
	normalize(profile)
	return profile, nil
}

// SaveProfile writes the whole profile in a single SET.
func (s *ProfileStore) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", profile.UID, err)
	}
	if err := s.kv.Set(ctx, ProfileKey(profile.UID), data, 0); err != nil {
		s.logger.Warn().Err(err).Str("uid", profile.UID).Msg("failed to save profile")
		return fmt.Errorf("save profile %s: %w", profile.UID, err)
	}
	return nil
}

// SaveLastOrder records intent as the user's last order and bumps the
// matching favorite when both restaurant and food item are known.
func (s *ProfileStore) SaveLastOrder(ctx context.Context, uid string, intent domain.OrderIntent) error {
	unlock := s.locks.Lock(uid)
	defer unlock()

	profile, _ := s.GetProfile(ctx, uid)
	last := intent.Clone()
	profile.LastOrder = &last

	if intent.Restaurant != "" && intent.FoodItem != "" {
		profile.FavoriteOrders = RecordFavorite(profile.FavoriteOrders, intent.Restaurant, intent.FoodItem, s.now())
	}

	return s.SaveProfile(ctx, profile)
}

// RecordFavorite bumps or appends the (restaurant, food) pair, then keeps the
// MaxFavoriteOrders most frequent pairs. Equal counts keep their order.
func RecordFavorite(favorites []domain.FavoriteOrder, restaurant, foodItem string, at time.Time) []domain.FavoriteOrder {
	found := false
	for i := range favorites {
		if favorites[i].Restaurant == restaurant && favorites[i].FoodItem == foodItem {
			favorites[i].OrderCount++
			favorites[i].LastOrdered = at
			found = true
			break
		}
	}
	if !found {
		favorites = append(favorites, domain.FavoriteOrder{
			Restaurant:  restaurant,
			FoodItem:    foodItem,
			LastOrdered: at,
			OrderCount:  1,
		})
	}

	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].OrderCount > favorites[j].OrderCount
	})
	if len(favorites) > MaxFavoriteOrders {
		favorites = favorites[:MaxFavoriteOrders]
	}
	return favorites
}

// UpdatePreferences merges learned restaurants and dietary preferences.
// Favorites and the last order are left alone.
func (s *ProfileStore) UpdatePreferences(ctx context.Context, uid string, prefs domain.Preferences) error {
	unlock := s.locks.Lock(uid)
	defer unlock()

	profile, _ := s.GetProfile(ctx, uid)
	profile.FavoriteRestaurants = mergeUnique(profile.FavoriteRestaurants, prefs.FavoriteRestaurants)
	profile.DietaryPreferences = mergeUnique(profile.DietaryPreferences, prefs.DietaryPreferences)
	return s.SaveProfile(ctx, profile)
}

// SetupProfile applies explicit user settings. Lists replace the stored ones.
func (s *ProfileStore) SetupProfile(ctx context.Context, uid string, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	unlock := s.locks.Lock(uid)
	defer unlock()

	profile, _ := s.GetProfile(ctx, uid)
	if update.DeliveryAddress != nil {
		profile.DeliveryAddress = *update.DeliveryAddress
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.FavoriteRestaurants != nil {
		profile.FavoriteRestaurants = mergeUnique(nil, update.FavoriteRestaurants)
	}
	if update.DietaryPreferences != nil {
		profile.DietaryPreferences = mergeUnique(nil, update.DietaryPreferences)
	}

	if err := s.SaveProfile(ctx, profile); err != nil {
		return profile, err
	}
	return profile, nil
}

// GetSession returns an empty context when the session is unknown or expired.
func (s *ProfileStore) GetSession(ctx context.Context, sessionID string) (domain.SessionContext, error) {
	data, err := s.kv.Get(ctx, SessionKey(sessionID))
	if errors.Is(err, ErrNotFound) {
		return domain.SessionContext{}, nil
	}
	if err != nil {
		return domain.SessionContext{}, fmt.Errorf("read session %s: %w", sessionID, err)
	}

	session := domain.SessionContext{}
	if err := json.Unmarshal(data, &session); err != nil {
		return domain.SessionContext{}, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return session, nil
}

// SaveSession stores the context with an expiry; ttl <= 0 means one hour.
func (s *ProfileStore) SaveSession(ctx context.Context, sessionID string, session domain.SessionContext, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}
	if err := s.kv.Set(ctx, SessionKey(sessionID), data, ttl); err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

func mergeUnique(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, values := range [][]string{existing, incoming} {
		for _, value := range values {
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, value)
		}
	}
	return out
}

// normalize restores empty lists that older records stored as null.
func normalize(profile *domain.UserProfile) {
	if profile.FavoriteRestaurants == nil {
		profile.FavoriteRestaurants = []string{}
	}
	if profile.FavoriteOrders == nil {
		profile.FavoriteOrders = []domain.FavoriteOrder{}
	}
	if profile.DietaryPreferences == nil {
		profile.DietaryPreferences = []string{}
	}
}
