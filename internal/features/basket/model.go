package basket

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BasketItem is a priced snapshot of a configuration. The price is fixed
// at add time and re-checked at checkout, never trusted from the client.
type BasketItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category     string             `bson:"category" json:"category"`
	EncodedState string             `bson:"encoded_state" json:"encoded_state"`
	Description  string             `bson:"description" json:"description"`
	UnitPrice    float64            `bson:"unit_price" json:"unit_price"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	AddedAt      time.Time          `bson:"added_at" json:"added_at"`
}

type Basket struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Items     []BasketItem       `bson:"items" json:"items"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// BasketView is the API shape: the basket plus its computed total.
type BasketView struct {
	Basket
	Total string `json:"total"`
}
