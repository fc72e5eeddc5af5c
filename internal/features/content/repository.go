package content

import (
	"context"
	"fmt"
	"time"

	"oakcraft/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PageRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]Page, error)
	FindBySlug(ctx context.Context, slug string) (*Page, error)
	Upsert(ctx context.Context, page *Page) error
	Delete(ctx context.Context, slug string) error
}

type PageRepositoryImpl struct {
	collection *mongo.Collection
}

func NewPageRepository(mongodb *database.MongodbDB) PageRepository {
	return &PageRepositoryImpl{
		collection: mongodb.DB.Collection("pages"),
	}
}

func (r *PageRepositoryImpl) List(ctx context.Context, publishedOnly bool) ([]Page, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"slug": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pages []Page
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *PageRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Page, error) {
	var page Page
	if err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageRepositoryImpl) Upsert(ctx context.Context, page *Page) error {
	page.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":      page.Title,
			"body":       page.Body,
			"published":  page.Published,
			"updated_at": page.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"slug":       page.Slug,
			"created_at": time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"slug": page.Slug}, update, options.Update().SetUpsert(true))
	return err
}

func (r *PageRepositoryImpl) Delete(ctx context.Context, slug string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("page not found")
	}
	return nil
}
