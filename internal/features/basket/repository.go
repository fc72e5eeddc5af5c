package basket

import (
	"context"
	"fmt"
	"time"

	"oakcraft/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BasketRepository interface {
	// Get returns the user's basket, creating an empty one in memory if
	// none is stored yet.
	Get(ctx context.Context, userID string) (*Basket, error)
	AddItem(ctx context.Context, userID string, item *BasketItem) error
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type BasketRepositoryImpl struct {
	collection *mongo.Collection
}

func NewBasketRepository(mongodb *database.MongodbDB) BasketRepository {
	return &BasketRepositoryImpl{
		collection: mongodb.DB.Collection("baskets"),
	}
}

func (r *BasketRepositoryImpl) Get(ctx context.Context, userID string) (*Basket, error) {
	var basket Basket
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&basket)
	if err == mongo.ErrNoDocuments {
		return &Basket{UserID: userID, Items: []BasketItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &basket, nil
}

func (r *BasketRepositoryImpl) AddItem(ctx context.Context, userID string, item *BasketItem) error {
	item.ID = primitive.NewObjectID()
	item.AddedAt = time.Now()

	update := bson.M{
		"$push": bson.M{"items": item},
		"$set":  bson.M{"updated_at": time.Now()},
		"$setOnInsert": bson.M{
			"user_id": userID,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *BasketRepositoryImpl) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return err
	}

	filter := bson.M{"user_id": userID, "items._id": oid}
	update := bson.M{
		"$set": bson.M{
			"items.$.quantity": quantity,
			"updated_at":       time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("basket item not found")
	}
	return nil
}

func (r *BasketRepositoryImpl) RemoveItem(ctx context.Context, userID, itemID string) error {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return err
	}

	update := bson.M{
		"$pull": bson.M{"items": bson.M{"_id": oid}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("basket not found")
	}
	return nil
}

func (r *BasketRepositoryImpl) Clear(ctx context.Context, userID string) error {
	update := bson.M{
		"$set": bson.M{
			"items":      []BasketItem{},
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	return err
}
