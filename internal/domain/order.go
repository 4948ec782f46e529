package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int64  `bson:"quantity" json:"quantity"`
}

// Order is insert-only. Total is always the server-computed sum; any total the
// client sent is discarded before the order reaches this struct.
type Order struct {
	ID       primitive.ObjectID     `bson:"_id,omitempty"`
	Items    []OrderItem            `bson:"items"`
	Total    float64                `bson:"total"`
	Metadata map[string]interface{} `bson:",inline"`
}
