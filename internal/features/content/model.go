package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is a slug-addressed marketing or legal page (terms, privacy, FAQ,
// landing copy). Only published pages are visible on the storefront.
type Page struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug      string             `bson:"slug" json:"slug"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Published bool               `bson:"published" json:"published"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
