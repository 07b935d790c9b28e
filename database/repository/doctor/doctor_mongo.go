package doctorRepo

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

// MongoDoctorRepo implements DoctorRepository against the users collection.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(database.Name)
	return &MongoDoctorRepo{coll: db.Collection("users")}
}

func (r *MongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching doctor %s: %w", id, err)
	}
	return &doc, nil
}

func (r *MongoDoctorRepo) FindCandidates(ctx context.Context, filter SearchFilter) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{
		"role": "doctor",
		"location.latitude": bson.M{
			"$gte": filter.MinLat,
			"$lte": filter.MaxLat,
		},
	}
	if filter.VerifiedOnly {
		query["verified"] = true
	}
	if filter.Profession != "" {
		query["profession"] = bson.M{"$regex": filter.Profession, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "location.latitude", Value: 1}})
	if filter.HardCap > 0 {
		opts.SetLimit(filter.HardCap)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("finding doctor candidates: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decoding doctor candidates: %w", err)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) GetFCMToken(ctx context.Context, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		FCMToken string `bson:"fcmToken"`
	}
	err := r.coll.FindOne(ctx, bson.M{"id": userID},
		options.FindOne().SetProjection(bson.M{"fcmToken": 1})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("fetching fcm token for %s: %w", userID, err)
	}
	return doc.FCMToken, nil
}
