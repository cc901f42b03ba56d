package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"mechgenz/backend/internal/database"
	"mechgenz/backend/internal/models"
)

var ErrOverrideNotFound = errors.New("image override not found")

// OverrideRepository stores per-slot image overrides keyed by slot id.
type OverrideRepository struct {
	coll *mongo.Collection
}

func NewOverrideRepository(db *mongo.Database) *OverrideRepository {
	return &OverrideRepository{coll: db.Collection(database.CollectionImages)}
}

func (r *OverrideRepository) Get(ctx context.Context, slotID string) (models.ImageOverride, error) {
	var override models.ImageOverride
	err := r.coll.FindOne(ctx, bson.M{"_id": slotID}).Decode(&override)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ImageOverride{}, ErrOverrideNotFound
		}
		return models.ImageOverride{}, err
	}
	return override, nil
}

func (r *OverrideRepository) List(ctx context.Context) ([]models.ImageOverride, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var overrides []models.ImageOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func (r *OverrideRepository) Insert(ctx context.Context, override models.ImageOverride) error {
	_, err := r.coll.InsertOne(ctx, override)
	return err
}

// SetCurrentURL patches current_url and updated_at on an existing
// override. Fails with ErrOverrideNotFound when no document matched;
// it never materializes a document.
func (r *OverrideRepository) SetCurrentURL(ctx context.Context, slotID, url string, at time.Time) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": slotID},
		bson.M{"$set": bson.M{"current_url": url, "updated_at": at}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrOverrideNotFound
	}
	return nil
}

// UpdateMetadata patches name, description and updated_at on an
// existing override only.
func (r *OverrideRepository) UpdateMetadata(ctx context.Context, slotID, name, description string, at time.Time) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": slotID},
		bson.M{"$set": bson.M{"name": name, "description": description, "updated_at": at}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrOverrideNotFound
	}
	return nil
}

// Delete removes the override document entirely. The boolean reports
// whether a document actually existed.
func (r *OverrideRepository) Delete(ctx context.Context, slotID string) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": slotID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// Categories returns the distinct category values present in override
// documents. Slots that were never overridden do not contribute.
func (r *OverrideRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.coll.Distinct(ctx, "category", bson.M{}).Decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}
