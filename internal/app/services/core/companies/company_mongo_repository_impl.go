package companies

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

type CompanyMongoRepository struct {
	Collection *mongo.Collection
}

func NewCompanyMongoRepository(db *mongo.Client, dbName string) contracts.CompanyRepository {
	return &CompanyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCompanies),
	}
}

func (repo *CompanyMongoRepository) CreateCompany(ctx context.Context, company *models.Company) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, company)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CompanyMongoRepository) FindCompanyByID(ctx context.Context, companyID string) (*models.Company, error) {
	objectID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var company models.Company
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &company, nil
}

func (repo *CompanyMongoRepository) FindCompanyBySlug(ctx context.Context, slug string) (*models.Company, error) {
	var company models.Company
	err := repo.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &company, nil
}

func (repo *CompanyMongoRepository) UpdateCompany(ctx context.Context, company *models.Company) error {
	objectID, err := primitive.ObjectIDFromHex(company.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"name":         company.Name,
		"businessType": company.BusinessType,
		"email":        company.Email,
		"phone":        company.Phone,
		"address":      company.Address,
		"primaryColor": company.PrimaryColor,
		"logoUrl":      company.LogoURL,
		"openingHours": company.OpeningHours,
		"active":       company.Active,
		"subscription": company.Subscription,
		"updatedAt":    time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
