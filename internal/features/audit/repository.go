package audit

import (
	"context"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *common_models.AuditLog) error
	List(ctx context.Context, module string, limit, offset int64) ([]common_models.AuditLog, error)
	CountByModule(ctx context.Context, module string) (int64, error)
}

type AuditRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAuditRepository(mongodb *database.MongodbDB) AuditRepository {
	return &AuditRepositoryImpl{
		collection: mongodb.DB.Collection("audit_logs"),
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, entry *common_models.AuditLog) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *AuditRepositoryImpl) List(ctx context.Context, module string, limit, offset int64) ([]common_models.AuditLog, error) {
	filter := bson.M{}
	if module != "" {
		filter["module"] = module
	}

	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []common_models.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *AuditRepositoryImpl) CountByModule(ctx context.Context, module string) (int64, error) {
	filter := bson.M{}
	if module != "" {
		filter["module"] = module
	}
	return r.collection.CountDocuments(ctx, filter)
}
