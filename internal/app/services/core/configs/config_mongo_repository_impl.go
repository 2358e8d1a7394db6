package configs

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
)

type ConfigMongoRepository struct {
	Collection *mongo.Collection
}

func NewConfigMongoRepository(db *mongo.Client, dbName string) contracts.BusinessConfigRepository {
	return &ConfigMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBusinessConfigs),
	}
}

func (repo *ConfigMongoRepository) CreateConfig(ctx context.Context, config *models.BusinessConfig) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, config)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ConfigMongoRepository) FindConfigByCompanyID(ctx context.Context, companyID string) (*models.BusinessConfig, error) {
	var config models.BusinessConfig
	err := repo.Collection.FindOne(ctx, bson.M{"companyId": companyID}).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &config, nil
}

func (repo *ConfigMongoRepository) UpdateConfig(ctx context.Context, config *models.BusinessConfig) error {
	objectID, err := primitive.ObjectIDFromHex(config.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"modules":         config.Modules,
		"appointments":    config.Appointments,
		"catalog":         config.Catalog,
		"services":        config.Services,
		"customerFields":  config.CustomerFields,
		"notifications":   config.Notifications,
		"publicText":      config.PublicText,
		"appliedTemplate": config.AppliedTemplate,
		"updatedAt":       time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": config.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
