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

type PayableMongoRepository struct {
	Collection *mongo.Collection
}

func NewPayableMongoRepository(db *mongo.Client, dbName string) contracts.PayableRepository {
	return &PayableMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayables),
	}
}

func (repo *PayableMongoRepository) CreatePayable(ctx context.Context, payable *models.AccountPayable) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, payable)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PayableMongoRepository) FindPayableByID(ctx context.Context, companyID, payableID string) (*models.AccountPayable, error) {
	objectID, err := primitive.ObjectIDFromHex(payableID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var payable models.AccountPayable
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&payable)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payable, nil
}

func (repo *PayableMongoRepository) FindPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"companyId": companyID}, options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payables := make([]models.AccountPayable, 0)
	if err := cursor.All(ctx, &payables); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payables, nil
}

func (repo *PayableMongoRepository) FindPendingPayables(ctx context.Context, companyID string) ([]models.AccountPayable, error) {
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

	payables := make([]models.AccountPayable, 0)
	if err := cursor.All(ctx, &payables); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payables, nil
}

func (repo *PayableMongoRepository) UpdatePayable(ctx context.Context, payable *models.AccountPayable) error {
	objectID, err := primitive.ObjectIDFromHex(payable.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"description": payable.Description,
		"supplier":    payable.Supplier,
		"amount":      payable.Amount,
		"dueDate":     payable.DueDate,
		"paidDate":    payable.PaidDate,
		"status":      payable.Status,
		"updatedAt":   time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": payable.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PayableMongoRepository) DeletePayable(ctx context.Context, companyID, payableID string) error {
	objectID, err := primitive.ObjectIDFromHex(payableID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "companyId": companyID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
