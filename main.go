package main

import (
	"context"
	"log"

	"github.com/2Ricky2/canteenpay/config"
	httpapi "github.com/2Ricky2/canteenpay/internal/api/http"
	"github.com/2Ricky2/canteenpay/internal/service"
	"github.com/2Ricky2/canteenpay/internal/storage"
)

const orderTopic = "orders"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(orderTopic)
	defer kafkaWriter.Close()

	kafkaReader := config.NewKafkaReader(orderTopic, "canteen-popularity")
	defer kafkaReader.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	sessions := storage.NewSessionStore(rdb, config.SessionTTL())
	popularity := storage.NewPopularityStore(rdb)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	accountSvc := service.NewAccountService(repo, sessions)
	menuSvc := service.NewMenuService(repo)
	orderSvc := service.NewOrderService(repo, publisher, service.DefaultQRGenerator{BaseURL: "http://localhost:" + config.Port()})
	analyticsSvc := service.NewAnalyticsService(repo, popularity)

	consumer := service.NewConsumer(kafkaReader, popularity)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(accountSvc, menuSvc, orderSvc, analyticsSvc, config.UploadDir())
	httpapi.StartServer(":"+config.Port(), httpapi.NewRouter(handler))
}
