package repository

import (
	"context"

	"github.com/nathanpras/storefront-service/internal/domain"
	pkgdto "github.com/nathanpras/storefront-service/pkg/dto"
	"github.com/nathanpras/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productCollection = "product"
	orderCollection   = "order"
)

type MongoDBStorefrontRepositoryImpl struct {
	db *mongo.Database
}

// CreateNewMongoDBRepository accepts a nil database: the service keeps serving
// with the store marked unavailable so catalog reads can degrade to empty.
func CreateNewMongoDBRepository(db *mongo.Database) MongoDBStorefrontRepository {
	return &MongoDBStorefrontRepositoryImpl{db: db}
}

func (r *MongoDBStorefrontRepositoryImpl) Available() bool {
	return r.db != nil
}

func (r *MongoDBStorefrontRepositoryImpl) Ping(ctx context.Context) error {
	if r.db == nil {
		return errs.ErrStoreUnavailable
	}

	return r.db.Client().Ping(ctx, nil)
}

func (r *MongoDBStorefrontRepositoryImpl) ListCollections(ctx context.Context) ([]string, error) {
	if r.db == nil {
		return nil, errs.ErrStoreUnavailable
	}

	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ListCollections").Msg("")
		return nil, err
	}

	return names, nil
}

func (r *MongoDBStorefrontRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

// buildProductFilter turns the search parameters into a Mongo filter: exact
// match on category, case-insensitive pattern match on title, ANDed when both
// are present.
func buildProductFilter(param pkgdto.Filter) bson.M {
	filter := bson.M{}
	if param.Category != "" {
		filter["category"] = param.Category
	}
	if param.Q != "" {
		filter["title"] = primitive.Regex{Pattern: param.Q, Options: "i"}
	}

	return filter
}

func (r *MongoDBStorefrontRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	opts := options.Find()
	if param.Limit > 0 {
		opts = opts.SetLimit(param.Limit)
	}

	cursor, err := r.db.Collection(productCollection).Find(ctx, buildProductFilter(param), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBStorefrontRepositoryImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")

		return product, err
	}

	return product, nil
}

func (r *MongoDBStorefrontRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(orderCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}
