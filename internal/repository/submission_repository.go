package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mechgenz/backend/internal/database"
	"mechgenz/backend/internal/models"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionRepository stores contact-form submissions.
type SubmissionRepository struct {
	coll *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{coll: db.Collection(database.CollectionSubmissions)}
}

func (r *SubmissionRepository) Insert(ctx context.Context, submission models.Submission) (string, error) {
	result, err := r.coll.InsertOne(ctx, submission)
	if err != nil {
		return "", err
	}
	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// List returns a page of submissions, newest first.
func (r *SubmissionRepository) List(ctx context.Context, limit, skip int64) ([]models.Submission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (models.Submission, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Submission{}, ErrSubmissionNotFound
	}

	var submission models.Submission
	if err := r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&submission); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		return models.Submission{}, err
	}
	return submission, nil
}

// UpdateStatus sets the free-form status string. Any value is accepted
// and persisted as-is.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrSubmissionNotFound
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": at}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrSubmissionNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// StatusBreakdown groups submissions by status.
func (r *SubmissionRepository) StatusBreakdown(ctx context.Context) ([]models.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var breakdown []models.StatusCount
	if err := cursor.All(ctx, &breakdown); err != nil {
		return nil, err
	}
	return breakdown, nil
}

// DailyCounts groups submissions since the given time into per-day
// buckets keyed by YYYY-MM-DD.
func (r *SubmissionRepository) DailyCounts(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"submitted_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$submitted_at",
			}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var daily []models.DailyCount
	if err := cursor.All(ctx, &daily); err != nil {
		return nil, err
	}
	return daily, nil
}

// AttachmentNames returns every stored attachment filename referenced
// by any submission. Used by the orphaned-file sweep.
func (r *SubmissionRepository) AttachmentNames(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"uploaded_files.saved_name": 1})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		UploadedFiles []struct {
			SavedName string `bson:"saved_name"`
		} `bson:"uploaded_files"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	var names []string
	for _, doc := range docs {
		for _, file := range doc.UploadedFiles {
			if file.SavedName != "" {
				names = append(names, file.SavedName)
			}
		}
	}
	return names, nil
}
