package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

// Consumer folds order events from Kafka into the popularity
// leaderboard. It runs alongside the HTTP server and is best-effort:
// a lost event only skews the leaderboard, never an order.
type Consumer struct {
	Reader     *kafka.Reader
	Popularity PopularityRepository
}

func NewConsumer(reader *kafka.Reader, popularity PopularityRepository) *Consumer {
	return &Consumer{Reader: reader, Popularity: popularity}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[canteen-api] starting order event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[canteen-api] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[canteen-api] error unmarshaling event: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced {
		return
	}
	if err := c.Popularity.RecordOrder(ctx, event.MenuID, event.Timestamp); err != nil {
		log.Printf("[canteen-api] error recording popularity for item %d: %v", event.MenuID, err)
		return
	}
	log.Printf("[canteen-api] recorded order for item %d", event.MenuID)
}
