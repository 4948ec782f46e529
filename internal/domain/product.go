package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product keeps a typed core plus an inline bag for whatever extra fields the
// catalog manager stored alongside it. The bag is persisted and read back
// without interpretation.
type Product struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Title      string                 `bson:"title"`
	Category   string                 `bson:"category"`
	Price      float64                `bson:"price"`
	Attributes map[string]interface{} `bson:",inline"`
}
