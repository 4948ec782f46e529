package repository

import (
	"context"

	"github.com/nathanpras/storefront-service/internal/domain"
	pkgdto "github.com/nathanpras/storefront-service/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoDBStorefrontRepository interface {
	Available() bool
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
}
