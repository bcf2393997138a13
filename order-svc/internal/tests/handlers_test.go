package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "foodvoice/order-svc/internal/api/http"
	"foodvoice/order-svc/internal/domain"
	"foodvoice/order-svc/internal/mocks"
	"foodvoice/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	orders   *mocks.OrderPipelineInterface
	profiles *mocks.ProfileStore
	qr       *mocks.QRGenerator
}

func serve(t *testing.T, prepareMocks func(m *handlerMocks), req *http.Request) *httptest.ResponseRecorder {
	m := &handlerMocks{
		orders:   mocks.NewOrderPipelineInterface(t),
		profiles: mocks.NewProfileStore(t),
		qr:       mocks.NewQRGenerator(t),
	}
	prepareMocks(m)

	handler := httpapi.NewHandler(m.orders, m.profiles, m.qr, map[string]string{"store": "memory"}, zerolog.Nop())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTranscriptWebhookHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		body         string
		prepareMocks func(m *handlerMocks)
		wantCode     int
		wantStatus   domain.OutcomeStatus
	}{
		{
			name:   "order placed",
			target: "/webhook/transcript?uid=u1",
			body:   `{"session_id":"s1","segments":[{"text":"I want pizza","is_user":true,"start":0,"end":1.5}]}`,
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("ProcessTranscript", mock.Anything, mock.MatchedBy(func(w domain.TranscriptWebhook) bool {
					return w.SessionID == "s1" && w.UserText() == "I want pizza"
				}), "u1").Return(domain.Outcome{Status: domain.OutcomeSuccess, Message: "Order placed: pizza"}).Once()
			},
			wantCode:   http.StatusOK,
			wantStatus: domain.OutcomeSuccess,
		},
		{
			name:   "no uid",
			target: "/webhook/transcript",
			body:   `{"session_id":"s1","segments":[]}`,
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("ProcessTranscript", mock.Anything, mock.Anything, "").
					Return(domain.Outcome{Status: domain.OutcomeNoSpeech}).Once()
			},
			wantCode:   http.StatusOK,
			wantStatus: domain.OutcomeNoSpeech,
		},
		{
			name:   "pipeline panic becomes error outcome",
			target: "/webhook/transcript",
			body:   `{"session_id":"s1","segments":[{"text":"order food","is_user":true}]}`,
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("ProcessTranscript", mock.Anything, mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) { panic("nil map") }).
					Return(domain.Outcome{}).Once()
			},
			wantCode:   http.StatusOK,
			wantStatus: domain.OutcomeError,
		},
		{
			name:         "invalid JSON",
			target:       "/webhook/transcript",
			body:         `{invalid}`,
			prepareMocks: func(m *handlerMocks) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", testCase.target, bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")

			w := serve(t, testCase.prepareMocks, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantStatus != "" {
				var outcome domain.Outcome
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
				assert.Equal(t, testCase.wantStatus, outcome.Status)
			}
		})
	}
}

func TestMemoryWebhookHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		body         string
		prepareMocks func(m *handlerMocks)
		wantCode     int
	}{
		{
			name:   "preferences learned",
			target: "/webhook/memory",
			body:   `{"uid":"u1","memory":{"id":"m1","created_at":"2026-03-01T12:00:00Z","transcript":"I love sushi"}}`,
			prepareMocks: func(m *handlerMocks) {
				prefs := domain.EmptyPreferences()
				prefs.FavoriteCuisines = []string{"Japanese"}
				m.orders.On("ProcessMemory", mock.Anything, mock.MatchedBy(func(w domain.MemoryWebhook) bool {
					return w.UID == "u1" && w.Memory.Transcript == "I love sushi"
				})).Return(domain.PreferencesOutcome{Status: domain.OutcomeSuccess, Preferences: &prefs}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "uid from query",
			target: "/webhook/memory?uid=u2",
			body:   `{"memory":{"transcript":"hello"}}`,
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("ProcessMemory", mock.Anything, mock.MatchedBy(func(w domain.MemoryWebhook) bool {
					return w.UID == "u2"
				})).Return(domain.PreferencesOutcome{Status: domain.OutcomeSuccess}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:         "missing uid",
			target:       "/webhook/memory",
			body:         `{"memory":{"transcript":"hello"}}`,
			prepareMocks: func(m *handlerMocks) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", testCase.target, bytes.NewBufferString(testCase.body))
			w := serve(t, testCase.prepareMocks, req)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestProfileHandlers(t *testing.T) {
	t.Run("get profile", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/profile/u1", nil)
		w := serve(t, func(m *handlerMocks) {
			profile := domain.NewUserProfile("u1")
			profile.FavoriteRestaurants = []string{"Chipotle"}
			m.profiles.On("GetProfile", mock.Anything, "u1").Return(profile, nil).Once()
		}, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var profile domain.UserProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
		assert.Equal(t, []string{"Chipotle"}, profile.FavoriteRestaurants)
	})

	t.Run("degraded read still answers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/profile/u1", nil)
		w := serve(t, func(m *handlerMocks) {
			m.profiles.On("GetProfile", mock.Anything, "u1").Return(domain.NewUserProfile("u1"), errors.New("redis down")).Once()
		}, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("setup profile", func(t *testing.T) {
		body := `{"delivery_address":"1 Main St","dietary_preferences":["vegan"]}`
		req := httptest.NewRequest("POST", "/profile/u1/setup", bytes.NewBufferString(body))
		w := serve(t, func(m *handlerMocks) {
			m.profiles.On("SetupProfile", mock.Anything, "u1", mock.MatchedBy(func(u domain.ProfileUpdate) bool {
				return u.DeliveryAddress != nil && *u.DeliveryAddress == "1 Main St" && u.Phone == nil &&
					u.FavoriteRestaurants == nil && len(u.DietaryPreferences) == 1
			})).Return(domain.NewUserProfile("u1"), nil).Once()
		}, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
	})

	t.Run("setup profile store failure", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/profile/u1/setup", bytes.NewBufferString(`{"phone":"555"}`))
		w := serve(t, func(m *handlerMocks) {
			m.profiles.On("SetupProfile", mock.Anything, "u1", mock.Anything).
				Return(domain.NewUserProfile("u1"), errors.New("redis down")).Once()
		}, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLastOrderQRCodeHandler(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(m *handlerMocks)
		wantCode     int
		wantType     string
	}{
		{
			name: "png for last order",
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("LastOrderDeepLink", mock.Anything, "u1").Return(pizzaHutLink, nil).Once()
				m.qr.On("Encode", pizzaHutLink).Return([]byte("\x89PNG"), nil).Once()
			},
			wantCode: http.StatusOK,
			wantType: "image/png",
		},
		{
			name: "no previous order",
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("LastOrderDeepLink", mock.Anything, "u1").Return("", service.ErrNoLastOrder).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "encoding failure",
			prepareMocks: func(m *handlerMocks) {
				m.orders.On("LastOrderDeepLink", mock.Anything, "u1").Return(pizzaHutLink, nil).Once()
				m.qr.On("Encode", pizzaHutLink).Return(nil, errors.New("too long")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/users/u1/last-order/qrcode", nil)
			w := serve(t, testCase.prepareMocks, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantType != "" {
				assert.Equal(t, testCase.wantType, w.Header().Get("Content-Type"))
				assert.Equal(t, pizzaHutLink, w.Header().Get("X-Deep-Link"))
			}
		})
	}
}

func TestDeepLinkQR_Encode(t *testing.T) {
	png, err := service.DeepLinkQR{}.Encode(pizzaHutLink)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = service.DeepLinkQR{}.Encode("")
	assert.ErrorIs(t, err, service.ErrEmptyLink)
}

func TestHealthAndRootHandlers(t *testing.T) {
	for _, path := range []string{"/", "/health"} {
		t.Run(path, func(t *testing.T) {
			w := serve(t, func(m *handlerMocks) {}, httptest.NewRequest("GET", path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestRouterExposesMetrics(t *testing.T) {
	handler := httpapi.NewHandler(
		mocks.NewOrderPipelineInterface(t), mocks.NewProfileStore(t), mocks.NewQRGenerator(t), nil, zerolog.Nop(),
	)
	w := httptest.NewRecorder()
	httpapi.NewRouter(handler).ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
