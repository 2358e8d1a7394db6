package customers

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

type CustomerMongoRepository struct {
	Collection *mongo.Collection
}

func NewCustomerMongoRepository(db *mongo.Client, dbName string) contracts.CustomerRepository {
	return &CustomerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCustomers),
	}
}

func (repo *CustomerMongoRepository) CreateCustomer(ctx context.Context, customer *models.Customer) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, customer)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CustomerMongoRepository) FindCustomerByID(ctx context.Context, companyID, customerID string) (*models.Customer, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var customer models.Customer
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &customer, nil
}

func (repo *CustomerMongoRepository) FindCustomerByEmail(ctx context.Context, companyID, email string) (*models.Customer, error) {
	var customer models.Customer
	err := repo.Collection.FindOne(ctx, bson.M{"companyId": companyID, "email": email}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &customer, nil
}

func (repo *CustomerMongoRepository) FindCustomers(ctx context.Context, companyID, search string, page, pageSize int) ([]models.Customer, int, error) {
	filter := bson.M{"companyId": companyID, "active": true}
	if search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"email": regex},
			{"phone": regex},
		}
	}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	customers := make([]models.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return customers, int(total), nil
}

func (repo *CustomerMongoRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	objectID, err := primitive.ObjectIDFromHex(customer.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":      customer.Name,
		"email":     customer.Email,
		"phone":     customer.Phone,
		"notes":     customer.Notes,
		"active":    customer.Active,
		"updatedAt": time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": customer.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *CustomerMongoRepository) SoftDeleteCustomer(ctx context.Context, companyID, customerID string) error {
	objectID, err := primitive.ObjectIDFromHex(customerID)
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
