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

type InvoiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewInvoiceMongoRepository(db *mongo.Client, dbName string) contracts.InvoiceRepository {
	return &InvoiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInvoices),
	}
}

func (repo *InvoiceMongoRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, invoice)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *InvoiceMongoRepository) FindInvoiceByID(ctx context.Context, companyID, invoiceID string) (*models.Invoice, error) {
	objectID, err := primitive.ObjectIDFromHex(invoiceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var invoice models.Invoice
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &invoice, nil
}

func (repo *InvoiceMongoRepository) FindInvoices(ctx context.Context, companyID string) ([]models.Invoice, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"companyId": companyID}, options.Find().SetSort(bson.D{{Key: "issueDate", Value: -1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	invoices := make([]models.Invoice, 0)
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return invoices, nil
}

func (repo *InvoiceMongoRepository) CountInvoices(ctx context.Context, companyID string) (int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(total), nil
}

func (repo *InvoiceMongoRepository) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	objectID, err := primitive.ObjectIDFromHex(invoice.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"customerName": invoice.CustomerName,
		"items":        invoice.Items,
		"total":        invoice.Total,
		"dueDate":      invoice.DueDate,
		"status":       invoice.Status,
		"updatedAt":    time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": invoice.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *InvoiceMongoRepository) DeleteInvoice(ctx context.Context, companyID, invoiceID string) error {
	objectID, err := primitive.ObjectIDFromHex(invoiceID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "companyId": companyID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
