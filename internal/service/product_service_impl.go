package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nathanpras/storefront-service/config"
	"github.com/nathanpras/storefront-service/internal/domain"
	"github.com/nathanpras/storefront-service/internal/dto"
	"github.com/nathanpras/storefront-service/internal/repository"
	pkgdto "github.com/nathanpras/storefront-service/pkg/dto"
	"github.com/nathanpras/storefront-service/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultProductLimit = 50

type ProductServiceImpl struct {
	mongoDBRepo   repository.MongoDBStorefrontRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateProductService(mongoDBRepo repository.MongoDBStorefrontRepository, config config.Config, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo, config: config, kafkaProducer: kafkaProducer}
}

func mapProduct(data domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         data.ID.Hex(),
		Title:      data.Title,
		Category:   data.Category,
		Price:      data.Price,
		Attributes: data.Attributes,
	}
}

// GetProducts degrades to an empty result when the store is unavailable:
// catalog browsing stays up even when nothing can be read.
func (s *ProductServiceImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []dto.ProductResponse, err error) {
	data = []dto.ProductResponse{}
	if !s.mongoDBRepo.Available() {
		return data, nil
	}

	if param.Limit <= 0 {
		param.Limit = defaultProductLimit
	}

	products, err := s.mongoDBRepo.GetProducts(ctx, param)
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		data = append(data, mapProduct(product))
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error) {
	if !s.mongoDBRepo.Available() {
		return data, errs.ErrStoreUnavailable
	}

	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrMalformedProductID
	}

	product, err := s.mongoDBRepo.GetProductByID(ctx, productID)
	if err != nil {
		return data, err
	}

	return mapProduct(product), nil
}

// AddProduct trusts the payload as given: this is the catalog-management path,
// not a customer-facing one.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (id string, err error) {
	if !s.mongoDBRepo.Available() {
		return "", errs.ErrStoreUnavailable
	}

	productID, err := s.mongoDBRepo.AddProduct(ctx, domain.Product{
		Title:      data.Title,
		Category:   data.Category,
		Price:      data.Price,
		Attributes: data.Attributes,
	})
	if err != nil {
		return "", err
	}

	s.publishEvent(ctx, dto.KafkaMessage{
		EventType: "product_added",
		Data: dto.ProductResponse{
			ID:         productID.Hex(),
			Title:      data.Title,
			Category:   data.Category,
			Price:      data.Price,
			Attributes: data.Attributes,
		},
	})

	return productID.Hex(), nil
}

// publishEvent is best effort. The record is already persisted, so a broker
// outage is logged rather than surfaced to the caller; without a configured
// producer it is a no-op.
func (s *ProductServiceImpl) publishEvent(ctx context.Context, msg dto.KafkaMessage) {
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
