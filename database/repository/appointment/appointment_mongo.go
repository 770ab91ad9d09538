package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

// Create inserts a new appointment document.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, appointment); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// Delete removes an appointment record. Used by the post-write race check to
// compensate a losing insert.
func (repo *MongoAppointmentRepo) Delete(ctx context.Context, appointmentID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": appointmentID})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", appointmentID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("appointment %s not found", appointmentID)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": appointmentID}).Decode(&appointment)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("appointment %s not found", appointmentID)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	return &appointment, nil
}

// UpdateStatus sets the status field of an appointment.
func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	result, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": appointmentID}, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s status: %w", appointmentID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", appointmentID)
	}
	return nil
}

// FindActiveByExactDate is the legacy fast path for byte-identical stored
// appointment_date values.
func (repo *MongoAppointmentRepo) FindActiveByExactDate(ctx context.Context, doctorID string, dates []string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctor_id":        doctorID,
		"status":           bson.M{"$in": models.ActiveStatuses},
		"appointment_date": bson.M{"$in": dates},
	}
	var appointment models.Appointment
	err := repo.coll.FindOne(ctxWithTimeout, filter).Decode(&appointment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding appointment by exact date: %w", err)
	}
	return &appointment, nil
}

// FindActiveByDay matches stored appointment_date strings by date prefix so
// that every historical timestamp shape on the same calendar day is caught.
func (repo *MongoAppointmentRepo) FindActiveByDay(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctor_id":        doctorID,
		"status":           bson.M{"$in": models.ActiveStatuses},
		"appointment_date": bson.M{"$regex": "^" + date},
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding appointments for doctor %s on %s: %w", doctorID, date, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appointments []models.Appointment
	for cursor.Next(ctxWithTimeout) {
		var appointment models.Appointment
		if err := cursor.Decode(&appointment); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appointments, nil
}
