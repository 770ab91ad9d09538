package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the conflict checker relies on. The
// compound (doctor_id, appointment_date, status) index backs both the
// exact-date fast path and the same-day prefix scan.
func EnsureIndexes(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("appointments")
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "doctor_id", Value: 1},
				{Key: "appointment_date", Value: 1},
				{Key: "status", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "patient_id", Value: 1}},
		},
	}
	if _, err := coll.Indexes().CreateMany(ctxWithTimeout, indexes); err != nil {
		return fmt.Errorf("error creating appointment indexes: %w", err)
	}
	return nil
}
