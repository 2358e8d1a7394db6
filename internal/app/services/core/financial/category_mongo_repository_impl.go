package financial

import (
	"context"
	"time"

	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewCategoryMongoRepository(db *mongo.Client, dbName string) contracts.FinancialCategoryRepository {
	return &CategoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCategories),
	}
}

func (repo *CategoryMongoRepository) CreateCategory(ctx context.Context, category *models.FinancialCategory) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, category)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CategoryMongoRepository) FindCategoryByID(ctx context.Context, companyID, categoryID string) (*models.FinancialCategory, error) {
	objectID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var category models.FinancialCategory
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &category, nil
}

func (repo *CategoryMongoRepository) FindActiveCategories(ctx context.Context, companyID string) ([]models.FinancialCategory, error) {
	filter := bson.M{"companyId": companyID, "active": true}
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	categories := make([]models.FinancialCategory, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return categories, nil
}

func (repo *CategoryMongoRepository) SoftDeleteCategory(ctx context.Context, companyID, categoryID string) error {
	objectID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"active":    false,
		"deletedAt": now,
		"updatedAt": now,
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": companyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
