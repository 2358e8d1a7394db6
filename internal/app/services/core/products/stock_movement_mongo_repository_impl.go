package products

import (
	"context"

	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StockMovementMongoRepository struct {
	Collection *mongo.Collection
}

func NewStockMovementMongoRepository(db *mongo.Client, dbName string) contracts.StockMovementRepository {
	return &StockMovementMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStockMovements),
	}
}

func (repo *StockMovementMongoRepository) CreateStockMovement(ctx context.Context, movement *models.StockMovement) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, movement)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *StockMovementMongoRepository) FindStockMovementsByProduct(ctx context.Context, companyID, productID string, page, pageSize int) ([]models.StockMovement, int, error) {
	filter := bson.M{"companyId": companyID, "productId": productID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	movements := make([]models.StockMovement, 0)
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return movements, int(total), nil
}
