package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &MongoAvailabilityRepo{
		coll: database.DB().Collection("doctor_availability"),
	}
}

// GetByDoctorID retrieves the weekly availability document for a doctor,
// lazily creating an all-unavailable default when none exists.
func (repo *MongoAvailabilityRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklyAvailability, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var availability models.WeeklyAvailability
	filter := bson.M{"doctor_id": doctorID}
	err := repo.coll.FindOne(ctxWithTimeout, filter).Decode(&availability)
	if err == mongo.ErrNoDocuments {
		return repo.Upsert(ctx, doctorID, models.DefaultWeek())
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching availability for doctor %s: %w", doctorID, err)
	}
	// Older documents may predate one or more weekday keys.
	availability.Week = models.NormalizeWeek(availability.Week)
	return &availability, nil
}

// Upsert replaces the doctor's full weekly availability document.
func (repo *MongoAvailabilityRepo) Upsert(ctx context.Context, doctorID string, week map[string]models.DayAvailability) (*models.WeeklyAvailability, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{"doctor_id": doctorID}
	update := bson.M{
		"$set": bson.M{
			"doctor_id":           doctorID,
			"weekly_availability": week,
			"updated_at":          now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update, opts); err != nil {
		return nil, fmt.Errorf("error upserting availability for doctor %s: %w", doctorID, err)
	}

	var stored models.WeeklyAvailability
	if err := repo.coll.FindOne(ctxWithTimeout, filter).Decode(&stored); err != nil {
		return nil, fmt.Errorf("error fetching availability for doctor %s after upsert: %w", doctorID, err)
	}
	return &stored, nil
}
