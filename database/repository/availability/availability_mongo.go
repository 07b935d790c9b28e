package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medagenda/database"
	"medagenda/models"
)

// MongoAvailabilityRepo implements AvailabilityRepository on MongoDB.
type MongoAvailabilityRepo struct {
	settingsColl *mongo.Collection
	availColl    *mongo.Collection
}

// NewMongoAvailabilityRepo constructs the repository against the default
// database.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.Name)
	return &MongoAvailabilityRepo{
		settingsColl: db.Collection("work_settings"),
		availColl:    db.Collection("availabilities"),
	}
}

func (r *MongoAvailabilityRepo) GetWorkSettings(ctx context.Context, doctorID string) (*models.WorkSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.WorkSettings
	err := r.settingsColl.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching work settings for doctor %s: %w", doctorID, err)
	}
	return &settings, nil
}

func (r *MongoAvailabilityRepo) SaveWorkSettings(ctx context.Context, settings *models.WorkSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": settings.DoctorID}
	_, err := r.settingsColl.ReplaceOne(ctx, filter, settings, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving work settings for doctor %s: %w", settings.DoctorID, err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) GetDateAvailability(ctx context.Context, doctorID, date string) (*models.DateAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.DateAvailability
	err := r.availColl.FindOne(ctx, bson.M{"doctorId": doctorID, "date": date}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching availability %s/%s: %w", doctorID, date, err)
	}
	return &doc, nil
}

func (r *MongoAvailabilityRepo) SaveDateAvailability(ctx context.Context, doc *models.DateAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doc.DoctorID, "date": doc.Date}
	_, err := r.availColl.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving availability %s/%s: %w", doc.DoctorID, doc.Date, err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) DeleteDateAvailability(ctx context.Context, doctorID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.availColl.DeleteOne(ctx, bson.M{"doctorId": doctorID, "date": date})
	if err != nil {
		return fmt.Errorf("deleting availability %s/%s: %w", doctorID, date, err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) ListDateAvailabilities(ctx context.Context, doctorID, from, to string) ([]models.DateAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Date keys are "YYYY-MM-DD", so lexicographic range equals date range.
	filter := bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.availColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing availabilities for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var docs []models.DateAvailability
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding availabilities for doctor %s: %w", doctorID, err)
	}
	return docs, nil
}
