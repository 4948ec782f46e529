package kafka

import (
	"context"

	"github.com/nathanpras/storefront-service/config"
	"github.com/segmentio/kafka-go"
)

var KafkaConn *kafka.Conn

func CreateKafkaProducer(config *config.Config) (*kafka.Conn, error) {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	KafkaConn = conn
	return KafkaConn, nil
}
