package service

import (
	"context"
	"strings"

	"github.com/nathanpras/storefront-service/internal/domain"
	pkgdto "github.com/nathanpras/storefront-service/pkg/dto"
	"github.com/nathanpras/storefront-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRepository keeps records in insertion order, mirroring the store's
// natural retrieval order for fixtures.
type fakeRepository struct {
	available      bool
	products       []domain.Product
	orders         []domain.Order
	orderInsertErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{available: true}
}

func (f *fakeRepository) addFixture(title, category string, price float64, attrs map[string]interface{}) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.products = append(f.products, domain.Product{
		ID:         id,
		Title:      title,
		Category:   category,
		Price:      price,
		Attributes: attrs,
	})
	return id
}

func (f *fakeRepository) Available() bool {
	return f.available
}

func (f *fakeRepository) Ping(ctx context.Context) error {
	if !f.available {
		return errs.ErrStoreUnavailable
	}
	return nil
}

func (f *fakeRepository) ListCollections(ctx context.Context) ([]string, error) {
	if !f.available {
		return nil, errs.ErrStoreUnavailable
	}
	return []string{"product", "order"}, nil
}

func (f *fakeRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	f.products = append(f.products, data)
	return data.ID, nil
}

func (f *fakeRepository) GetProducts(ctx context.Context, param pkgdto.Filter) ([]domain.Product, error) {
	var matched []domain.Product
	for _, product := range f.products {
		if param.Category != "" && product.Category != param.Category {
			continue
		}
		if param.Q != "" && !strings.Contains(strings.ToLower(product.Title), strings.ToLower(param.Q)) {
			continue
		}
		matched = append(matched, product)
		if param.Limit > 0 && int64(len(matched)) >= param.Limit {
			break
		}
	}
	return matched, nil
}

func (f *fakeRepository) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	for _, product := range f.products {
		if product.ID == id {
			return product, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (f *fakeRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	if f.orderInsertErr != nil {
		return primitive.NilObjectID, f.orderInsertErr
	}
	data.ID = primitive.NewObjectID()
	f.orders = append(f.orders, data)
	return data.ID, nil
}
