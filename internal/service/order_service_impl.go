package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nathanpras/storefront-service/config"
	"github.com/nathanpras/storefront-service/internal/domain"
	"github.com/nathanpras/storefront-service/internal/dto"
	"github.com/nathanpras/storefront-service/internal/repository"
	"github.com/nathanpras/storefront-service/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	mongoDBRepo   repository.MongoDBStorefrontRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateOrderService(mongoDBRepo repository.MongoDBStorefrontRepository, config config.Config, kafkaProducer *kafka.Conn) OrderService {
	return &OrderServiceImpl{mongoDBRepo: mongoDBRepo, config: config, kafkaProducer: kafkaProducer}
}

// AddOrder prices the order server-side from the current catalog. Client-sent
// prices or totals are never consulted. Items resolve sequentially and the
// first unresolvable reference fails the whole order before anything is
// written; a malformed product id is reported the same way as a missing one,
// since either way the reference does not resolve.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, data dto.OrderRequest) (id string, err error) {
	if !s.mongoDBRepo.Available() {
		return "", errs.ErrStoreUnavailable
	}

	if len(data.Items) == 0 {
		return "", errs.ErrEmptyOrder
	}

	total := 0.0
	for _, item := range data.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return "", fmt.Errorf("%w: %s", errs.ErrProductNotFound, item.ProductID)
		}

		product, err := s.mongoDBRepo.GetProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return "", fmt.Errorf("%w: %s", errs.ErrProductNotFound, item.ProductID)
			}
			return "", err
		}

		// A product stored without a price counts as 0, never an error.
		total += product.Price * float64(item.Quantity)
	}

	orderID, err := s.mongoDBRepo.AddOrder(ctx, domain.Order{
		Items:    data.Items,
		Total:    roundToCents(total),
		Metadata: data.Metadata,
	})
	if err != nil {
		return "", err
	}

	s.publishEvent(ctx, dto.KafkaMessage{
		EventType: "order_created",
		Data: map[string]interface{}{
			"id":    orderID.Hex(),
			"items": data.Items,
			"total": roundToCents(total),
		},
	})

	return orderID.Hex(), nil
}

// roundToCents rounds half away from zero to 2 fractional digits.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func (s *OrderServiceImpl) publishEvent(ctx context.Context, msg dto.KafkaMessage) {
	if s.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", msg.EventType).Msg("giving up on event publish")
}
