package catalog

import (
	"context"

	"oakcraft/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	Upsert(ctx context.Context, category *Category) error
}

type CategoryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewCategoryRepository(mongodb *database.MongodbDB) CategoryRepository {
	return &CategoryRepositoryImpl{
		collection: mongodb.DB.Collection("categories"),
	}
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id string) (*Category, error) {
	var category Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Upsert(ctx context.Context, category *Category) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category, opts)
	return err
}
