package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindAppointmentByID(ctx context.Context, companyID, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "companyId": companyID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindAppointments(ctx context.Context, companyID string, filter *requests.ListAppointments) ([]models.Appointment, int, error) {
	query := bson.M{"companyId": companyID}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CustomerID != "" {
		query["customerId"] = filter.CustomerID
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, int(total), nil
}

// FindActiveAppointmentsByDate returns every appointment on the given date
// that still occupies its slot, which is everything except cancelled ones.
func (repo *AppointmentMongoRepository) FindActiveAppointmentsByDate(ctx context.Context, companyID, date string) ([]models.Appointment, error) {
	query := bson.M{
		"companyId": companyID,
		"date":      date,
		"status":    bson.M{"$ne": constvars.AppointmentStatusCancelled},
	}

	cursor, err := repo.Collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "time", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"customerId":      appointment.CustomerID,
		"date":            appointment.Date,
		"time":            appointment.Time,
		"durationMinutes": appointment.DurationMinutes,
		"serviceName":     appointment.ServiceName,
		"servicePrice":    appointment.ServicePrice,
		"status":          appointment.Status,
		"notes":           appointment.Notes,
		"updatedAt":       time.Now(),
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID, "companyId": appointment.CompanyID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) DeleteAppointment(ctx context.Context, companyID, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "companyId": companyID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
