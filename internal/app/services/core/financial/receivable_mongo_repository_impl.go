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

type ReceivableMongoRepository struct {
	Collection *mongo.Collection
}

func NewReceivableMongoRepository(db *mongo.Client, dbName string) contracts.ReceivableRepository {
	return &ReceivableMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReceivables),
	}
}

func (repo *ReceivableMongoRepository) CreateReceivable(ctx context.Context, receivable *models.AccountReceivable) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, receivable)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ReceivableMongoRepository) FindReceivableByID(ctx context.Context, companyID, receivableID string) (*models.AccountReceivable, error) {
	objectID, err := primitive.ObjectIDFromHex(receivableID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var receivable models.AccountReceivable
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&receivable)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &receivable, nil
}

func (repo *ReceivableMongoRepository) FindReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"companyId": companyID}, options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	receivables := make([]models.AccountReceivable, 0)
	if err := cursor.All(ctx, &receivables); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return receivables, nil
}

func (repo *ReceivableMongoRepository) FindPendingReceivables(ctx context.Context, companyID string) ([]models.AccountReceivable, error) {
	query := bson.M{
		"companyId": companyID,
		"status": bson.M{"$in": []string{
			constvars.FinancialStatusPending,
			constvars.FinancialStatusOverdue,
		}},
	}
	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	receivables := make([]models.AccountReceivable, 0)
	if err := cursor.All(ctx, &receivables); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return receivables, nil
}

func (repo *ReceivableMongoRepository) UpdateReceivable(ctx context.Context, receivable *models.AccountReceivable) error {
	objectID, err := primitive.ObjectIDFromHex(receivable.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"description":  receivable.Description,
		"customerName": receivable.CustomerName,
		"amount":       receivable.Amount,
		"dueDate":      receivable.DueDate,
		"receivedDate": receivable.ReceivedDate,
		"status":       receivable.Status,
		"updatedAt":    time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": receivable.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ReceivableMongoRepository) DeleteReceivable(ctx context.Context, companyID, receivableID string) error {
	objectID, err := primitive.ObjectIDFromHex(receivableID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "companyId": companyID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
