// Command seed loads a demo barbershop into the database so the booking
// portal and the dashboard have something to show. Running it twice is safe:
// it stops when the demo company already exists.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/drivers/database"
	"bizsuite-service/internal/app/models"
	"bizsuite-service/internal/app/services/core/companies"
	"bizsuite-service/internal/app/services/core/configs"
	"bizsuite-service/internal/app/services/core/customers"
	"bizsuite-service/internal/app/services/core/products"
	"bizsuite-service/internal/app/services/core/users"
	"bizsuite-service/internal/pkg/utils"
)

const (
	demoCompanyName = "Barbearia Demo"
	demoOwnerEmail  = "demo@example.com"
	demoPassword    = "demo123"
)

func main() {
	driverConfig := config.NewDriverConfig()
	mongoClient := database.NewMongoDB(driverConfig)
	dbName := driverConfig.MongoDB.DbName

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	companyRepository := companies.NewCompanyMongoRepository(mongoClient, dbName)
	userRepository := users.NewUserMongoRepository(mongoClient, dbName)
	customerRepository := customers.NewCustomerMongoRepository(mongoClient, dbName)
	productRepository := products.NewProductMongoRepository(mongoClient, dbName)
	configRepository := configs.NewConfigMongoRepository(mongoClient, dbName)

	slug := utils.GenerateSlug(demoCompanyName)
	existing, err := companyRepository.FindCompanyBySlug(ctx, slug)
	if err != nil {
		logrus.Fatalf("Failed to check for existing demo company: %v", err)
	}
	if existing != nil {
		logrus.Infof("Demo company already seeded at /%s, nothing to do", slug)
		return
	}

	now := time.Now()
	company := &models.Company{
		Name:         demoCompanyName,
		Slug:         slug,
		BusinessType: "barbershop",
		Email:        demoOwnerEmail,
		Phone:        "11999990000",
		OpeningHours: map[string]models.OpeningHours{
			"monday":    {Open: "09:00", Close: "19:00"},
			"tuesday":   {Open: "09:00", Close: "19:00"},
			"wednesday": {Open: "09:00", Close: "19:00"},
			"thursday":  {Open: "09:00", Close: "19:00"},
			"friday":    {Open: "09:00", Close: "20:00"},
			"saturday":  {Open: "08:00", Close: "14:00"},
			"sunday":    {Closed: true},
		},
		Active:       true,
		Subscription: "trial",
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	companyID, err := companyRepository.CreateCompany(ctx, company)
	if err != nil {
		logrus.Fatalf("Failed to create demo company: %v", err)
	}

	hashedPassword, err := utils.HashPassword(demoPassword)
	if err != nil {
		logrus.Fatalf("Failed to hash demo password: %v", err)
	}
	if _, err := userRepository.CreateUser(ctx, &models.User{
		CompanyID: companyID,
		Name:      "Demo Owner",
		Email:     demoOwnerEmail,
		Password:  hashedPassword,
		Role:      "owner",
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}); err != nil {
		logrus.Fatalf("Failed to create demo owner: %v", err)
	}

	if _, err := configRepository.CreateConfig(ctx, configs.DefaultBusinessConfig(companyID, "barbershop")); err != nil {
		logrus.Fatalf("Failed to create demo config: %v", err)
	}

	for _, customer := range []models.Customer{
		{Name: "Ana Souza", Email: "ana@example.com", Phone: "11988880001"},
		{Name: "Bruno Lima", Email: "bruno@example.com", Phone: "11988880002"},
		{Name: "Carla Dias", Email: "carla@example.com", Phone: "11988880003"},
	} {
		customer.CompanyID = companyID
		customer.Active = true
		customer.TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		if _, err := customerRepository.CreateCustomer(ctx, &customer); err != nil {
			logrus.Fatalf("Failed to create demo customer %s: %v", customer.Name, err)
		}
	}

	for _, product := range []models.Product{
		{Name: "Pomada Modeladora", Category: "cosmeticos", Price: 35, Cost: 18, Quantity: 24, MinQuantity: 5, Unit: "un"},
		{Name: "Shampoo Antiqueda", Category: "cosmeticos", Price: 48, Cost: 26, Quantity: 12, MinQuantity: 4, Unit: "un"},
		{Name: "Oleo para Barba", Category: "cosmeticos", Price: 42, Cost: 22, Quantity: 3, MinQuantity: 5, Unit: "un"},
	} {
		product.CompanyID = companyID
		product.Active = true
		product.TimeModel = models.TimeModel{CreatedAt: now, UpdatedAt: now}
		if _, err := productRepository.CreateProduct(ctx, &product); err != nil {
			logrus.Fatalf("Failed to create demo product %s: %v", product.Name, err)
		}
	}

	logrus.Infof("Demo company seeded: slug=%s owner=%s password=%s", slug, demoOwnerEmail, demoPassword)
}
