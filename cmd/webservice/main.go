package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nathanpras/storefront-service/config"
	"github.com/nathanpras/storefront-service/internal/app"
	"github.com/nathanpras/storefront-service/internal/infrastructure/database/mongodb"
	"github.com/nathanpras/storefront-service/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	app := app.App{Config: config}

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.DatabaseURL, config.MongoDBConfig.DatabaseName)
	if err != nil {
		log.Warn().Err(err).Msg("MongoDB is not available, catalog reads will degrade to empty results")
	} else {
		app.DB = db
		defer db.Client().Disconnect(context.Background())
	}

	if config.KafkaConfig.BrokerAddress != "" {
		producer, err := kafka.CreateKafkaProducer(config)
		if err != nil {
			log.Warn().Err(err).Msg("Kafka broker is not reachable, events will not be published")
		} else {
			app.Producer = producer
		}
	}

	app.Start()
}
