package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"foodvoice/history-svc/internal/domain"
	"foodvoice/history-svc/internal/mocks"
	"foodvoice/history-svc/internal/service"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var orderedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func placedEvent() domain.OrderEvent {
	return domain.OrderEvent{
		ID:         "evt-1",
		Type:       domain.EventOrderPlaced,
		UID:        "u1",
		Restaurant: "Pizza Hut",
		FoodItem:   "pepperoni pizza",
		Status:     "pending",
		DeepLink:   "https://www.doordash.com/store/pizza-hut/?query=pepperoni%20pizza",
		Timestamp:  orderedAt,
	}
}

func TestConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name         string
		event        func() domain.OrderEvent
		prepareMocks func(store *mocks.StoreInterface)
	}{
		{
			name:  "recorded and counted",
			event: placedEvent,
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("SaveOrder", mock.Anything, placedEvent()).Return(true, nil).Once()
				store.On("UpdatePopularity", mock.Anything, "Pizza Hut", orderedAt).Return(nil).Once()
			},
		},
		{
			name:  "redelivered event is not counted twice",
			event: placedEvent,
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("SaveOrder", mock.Anything, placedEvent()).Return(false, nil).Once()
			},
		},
		{
			name:  "save error stops processing",
			event: placedEvent,
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("SaveOrder", mock.Anything, mock.Anything).Return(false, errors.New("db connection failed")).Once()
			},
		},
		{
			name:  "popularity error",
			event: placedEvent,
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("SaveOrder", mock.Anything, mock.Anything).Return(true, nil).Once()
				store.On("UpdatePopularity", mock.Anything, "Pizza Hut", orderedAt).Return(errors.New("redis error")).Once()
			},
		},
		{
			name: "order without restaurant is logged only",
			event: func() domain.OrderEvent {
				e := placedEvent()
				e.Restaurant = ""
				return e
			},
			prepareMocks: func(store *mocks.StoreInterface) {
				store.On("SaveOrder", mock.Anything, mock.Anything).Return(true, nil).Once()
			},
		},
		{
			name: "other event types are ignored",
			event: func() domain.OrderEvent {
				e := placedEvent()
				e.Type = "order_cancelled"
				return e
			},
			prepareMocks: func(store *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStoreInterface(t)
			testCase.prepareMocks(store)

			consumer := service.NewConsumer(mocks.NewMessageReader(t), store, zerolog.Nop())
			consumer.ProcessOrder(context.Background(), testCase.event())
		})
	}
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(placedEvent())
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker unavailable")).Once()
	reader.On("ReadMessage", mock.Anything).
		Run(func(args mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()

	store := mocks.NewStoreInterface(t)
	store.On("SaveOrder", mock.Anything, placedEvent()).Return(true, nil).Once()
	store.On("UpdatePopularity", mock.Anything, "Pizza Hut", orderedAt).Return(nil).Once()

	service.NewConsumer(reader, store, zerolog.Nop()).Start(ctx)
}

func TestConsumer_StartStopsWhenReaderCloses(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, io.EOF).Once()

	service.NewConsumer(reader, mocks.NewStoreInterface(t), zerolog.Nop()).Start(context.Background())
}
