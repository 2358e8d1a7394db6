package products

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

type ProductMongoRepository struct {
	Collection *mongo.Collection
}

func NewProductMongoRepository(db *mongo.Client, dbName string) contracts.ProductRepository {
	return &ProductMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProducts),
	}
}

func (repo *ProductMongoRepository) CreateProduct(ctx context.Context, product *models.Product) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, product)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ProductMongoRepository) FindProductByID(ctx context.Context, companyID, productID string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var product models.Product
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &product, nil
}

func (repo *ProductMongoRepository) FindProducts(ctx context.Context, companyID string, filter *requests.ListProducts) ([]models.Product, int, error) {
	query := bson.M{"companyId": companyID, "active": true}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
		}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.LowStock {
		query["$expr"] = bson.M{"$lte": bson.A{"$quantity", "$minQuantity"}}
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, int(total), nil
}

func (repo *ProductMongoRepository) FindActiveProducts(ctx context.Context, companyID string) ([]models.Product, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"companyId": companyID, "active": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}

func (repo *ProductMongoRepository) FindLowStockProducts(ctx context.Context, companyID string) ([]models.Product, error) {
	query := bson.M{
		"companyId": companyID,
		"active":    true,
		"$expr":     bson.M{"$lte": bson.A{"$quantity", "$minQuantity"}},
	}
	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return products, nil
}

func (repo *ProductMongoRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	objectID, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"category":    product.Category,
		"price":       product.Price,
		"cost":        product.Cost,
		"quantity":    product.Quantity,
		"minQuantity": product.MinQuantity,
		"unit":        product.Unit,
		"active":      product.Active,
		"updatedAt":   time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": product.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ProductMongoRepository) SoftDeleteProduct(ctx context.Context, companyID, productID string) error {
	objectID, err := primitive.ObjectIDFromHex(productID)
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
