package pricing

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

type PriceRuleRepository interface {
	List(ctx context.Context, category string) ([]PriceRule, error)
	Upsert(ctx context.Context, rule *PriceRule) error
	Delete(ctx context.Context, id string) error
	ListFallbacks(ctx context.Context) ([]FallbackTable, error)
	UpsertFallback(ctx context.Context, fallback *FallbackTable) error
	ListRates(ctx context.Context) ([]RateTable, error)
	UpsertRate(ctx context.Context, rate *RateTable) error
}

type PriceRuleRepositoryImpl struct {
	rules     *mongo.Collection
	fallbacks *mongo.Collection
	rates     *mongo.Collection
}

func NewPriceRuleRepository(mongodb *database.MongodbDB) PriceRuleRepository {
	return &PriceRuleRepositoryImpl{
		rules:     mongodb.DB.Collection("price_rules"),
		fallbacks: mongodb.DB.Collection("price_fallbacks"),
		rates:     mongodb.DB.Collection("rate_tables"),
	}
}

func (r *PriceRuleRepositoryImpl) List(ctx context.Context, category string) ([]PriceRule, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.rules.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []PriceRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Upsert keys on (category, key) so re-seeding or re-saving a rule never
// duplicates it.
func (r *PriceRuleRepositoryImpl) Upsert(ctx context.Context, rule *PriceRule) error {
	rule.UpdatedAt = time.Now()

	filter := bson.M{"category": rule.Category, "key": rule.Key}
	update := bson.M{
		"$set": bson.M{
			"price":      rule.Price,
			"updated_at": rule.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"category":   rule.Category,
			"key":        rule.Key,
			"created_at": time.Now(),
		},
	}

	_, err := r.rules.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *PriceRuleRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.rules.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("price rule not found")
	}
	return nil
}

func (r *PriceRuleRepositoryImpl) ListFallbacks(ctx context.Context) ([]FallbackTable, error) {
	cursor, err := r.fallbacks.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var fallbacks []FallbackTable
	if err := cursor.All(ctx, &fallbacks); err != nil {
		return nil, err
	}
	return fallbacks, nil
}

func (r *PriceRuleRepositoryImpl) UpsertFallback(ctx context.Context, fallback *FallbackTable) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.fallbacks.ReplaceOne(ctx, bson.M{"_id": fallback.Category}, fallback, opts)
	return err
}

func (r *PriceRuleRepositoryImpl) ListRates(ctx context.Context) ([]RateTable, error) {
	cursor, err := r.rates.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rates []RateTable
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *PriceRuleRepositoryImpl) UpsertRate(ctx context.Context, rate *RateTable) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.rates.ReplaceOne(ctx, bson.M{"_id": rate.Category}, rate, opts)
	return err
}
