package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusFailed    OrderStatus = "failed"
	StatusApproved  OrderStatus = "approved"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem is frozen at checkout. Later price rule changes never touch
// an existing order.
type OrderItem struct {
	Category     string  `bson:"category" json:"category"`
	EncodedState string  `bson:"encoded_state" json:"encoded_state"`
	Description  string  `bson:"description" json:"description"`
	UnitPrice    float64 `bson:"unit_price" json:"unit_price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Items      []OrderItem        `bson:"items" json:"items"`
	Total      float64            `bson:"total" json:"total"`
	Currency   string             `bson:"currency" json:"currency"`
	Status     OrderStatus        `bson:"status" json:"status"`
	PaymentRef string             `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// validTransitions guards status updates from the admin side.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusPaid, StatusFailed, StatusCancelled},
	StatusPaid:     {StatusApproved, StatusCancelled},
	StatusFailed:   {StatusPending, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

func canTransition(from, to OrderStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
