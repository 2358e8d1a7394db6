package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizsuite-service/internal/app/config"
	"bizsuite-service/internal/app/delivery/http/middlewares"
	"bizsuite-service/internal/app/delivery/http/routers"
	"bizsuite-service/internal/app/drivers/database"
	"bizsuite-service/internal/app/drivers/logger"
	drivermailer "bizsuite-service/internal/app/drivers/mailer"
	"bizsuite-service/internal/app/drivers/messaging"
	"bizsuite-service/internal/app/drivers/storage"
	"bizsuite-service/internal/app/services/core/appointments"
	"bizsuite-service/internal/app/services/core/auth"
	"bizsuite-service/internal/app/services/core/booking"
	"bizsuite-service/internal/app/services/core/companies"
	"bizsuite-service/internal/app/services/core/configs"
	"bizsuite-service/internal/app/services/core/customers"
	"bizsuite-service/internal/app/services/core/financial"
	"bizsuite-service/internal/app/services/core/products"
	"bizsuite-service/internal/app/services/core/session"
	"bizsuite-service/internal/app/services/core/users"
	sharedlocker "bizsuite-service/internal/app/services/shared/locker"
	sharedmailer "bizsuite-service/internal/app/services/shared/mailer"
	sharedredis "bizsuite-service/internal/app/services/shared/redis"
	sharedstorage "bizsuite-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := drivermailer.NewSMTPClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap, smtpClient, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Address + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Infof("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to close resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, smtpClient *drivermailer.SMTPClient, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := sharedlocker.NewLockerService(redisRepository, bootstrap.Logger)
	minioStorage := sharedstorage.NewMinioStorage(minioClient)
	mailerService, err := sharedmailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
	if err != nil {
		logrus.Fatalf("Failed to initialize mailer service: %v", err)
	}
	workerStop, err := mailerService.StartWorker(bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to start mailer worker: %v", err)
	}
	bootstrap.WorkerStop = workerStop

	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	companyRepository := companies.NewCompanyMongoRepository(bootstrap.MongoClient, dbName)
	customerRepository := customers.NewCustomerMongoRepository(bootstrap.MongoClient, dbName)
	productRepository := products.NewProductMongoRepository(bootstrap.MongoClient, dbName)
	stockMovementRepository := products.NewStockMovementMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	categoryRepository := financial.NewCategoryMongoRepository(bootstrap.MongoClient, dbName)
	transactionRepository := financial.NewTransactionMongoRepository(bootstrap.MongoClient, dbName)
	payableRepository := financial.NewPayableMongoRepository(bootstrap.MongoClient, dbName)
	receivableRepository := financial.NewReceivableMongoRepository(bootstrap.MongoClient, dbName)
	invoiceRepository := financial.NewInvoiceMongoRepository(bootstrap.MongoClient, dbName)
	configRepository := configs.NewConfigMongoRepository(bootstrap.MongoClient, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(bootstrap.Logger, userRepository, companyRepository, sessionService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Customers
	customerUsecase := customers.NewCustomerUsecase(bootstrap.Logger, customerRepository)
	customerController := customers.NewCustomerController(bootstrap.Logger, customerUsecase)

	// Products
	productUsecase := products.NewProductUsecase(bootstrap.Logger, productRepository, stockMovementRepository)
	productController := products.NewProductController(bootstrap.Logger, productUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(bootstrap.Logger, appointmentRepository, customerRepository)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Financial
	financialUsecase := financial.NewFinancialUsecase(
		bootstrap.Logger,
		categoryRepository,
		transactionRepository,
		payableRepository,
		receivableRepository,
		invoiceRepository,
	)
	financialController := financial.NewFinancialController(bootstrap.Logger, financialUsecase)

	// Configuration panel
	configUsecase := configs.NewConfigUsecase(bootstrap.Logger, configRepository, companyRepository, minioStorage, bootstrap.InternalConfig)
	configController := configs.NewConfigController(bootstrap.Logger, configUsecase)

	// Public booking
	bookingUsecase := booking.NewBookingUsecase(
		bootstrap.Logger,
		companyRepository,
		configRepository,
		customerRepository,
		appointmentRepository,
		productRepository,
		lockerService,
		mailerService,
		bootstrap.InternalConfig,
	)
	bookingController := booking.NewBookingController(bootstrap.Logger, bookingUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		customerController,
		productController,
		appointmentController,
		financialController,
		configController,
		bookingController,
	)
}
