package financial

import (
	"context"
	"time"

	"bizsuite-service/internal/app/contracts"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTransactions),
	}
}

func (repo *TransactionMongoRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TransactionMongoRepository) FindTransactionByID(ctx context.Context, companyID, transactionID string) (*models.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var transaction models.Transaction
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (repo *TransactionMongoRepository) FindTransactions(ctx context.Context, companyID string, filter *requests.ListTransactions) ([]models.Transaction, int, error) {
	query := bson.M{"companyId": companyID}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.StartDate != "" || filter.EndDate != "" {
		dateRange := bson.M{}
		if filter.StartDate != "" {
			dateRange["$gte"] = filter.StartDate
		}
		if filter.EndDate != "" {
			dateRange["$lte"] = filter.EndDate
		}
		query["date"] = dateRange
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	transactions := make([]models.Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return transactions, int(total), nil
}

// FindTransactionsByDateRange feeds the summary. Dates sort correctly as
// strings because they are stored as "YYYY-MM-DD".
func (repo *TransactionMongoRepository) FindTransactionsByDateRange(ctx context.Context, companyID, startDate, endDate string) ([]models.Transaction, error) {
	query := bson.M{"companyId": companyID}
	if startDate != "" || endDate != "" {
		dateRange := bson.M{}
		if startDate != "" {
			dateRange["$gte"] = startDate
		}
		if endDate != "" {
			dateRange["$lte"] = endDate
		}
		query["date"] = dateRange
	}

	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	transactions := make([]models.Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return transactions, nil
}

func (repo *TransactionMongoRepository) UpdateTransaction(ctx context.Context, transaction *models.Transaction) error {
	objectID, err := primitive.ObjectIDFromHex(transaction.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"categoryId":  transaction.CategoryID,
		"description": transaction.Description,
		"amount":      transaction.Amount,
		"date":        transaction.Date,
		"status":      transaction.Status,
		"updatedAt":   time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": transaction.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *TransactionMongoRepository) DeleteTransaction(ctx context.Context, companyID, transactionID string) error {
	objectID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "companyId": companyID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
