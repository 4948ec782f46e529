package service

import (
	"context"

	"github.com/nathanpras/storefront-service/internal/dto"
	pkgdto "github.com/nathanpras/storefront-service/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (id string, err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, data dto.OrderRequest) (id string, err error)
}

type SystemService interface {
	Health(ctx context.Context) dto.HealthResponse
}
