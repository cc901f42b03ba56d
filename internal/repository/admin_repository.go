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

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository stores the single admin account. Credential checks
// are plaintext equality; there is deliberately no hashing layer here.
type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(database.CollectionAdminUsers)}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (models.AdminUser, error) {
	var admin models.AdminUser
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.AdminUser{}, ErrAdminNotFound
		}
		return models.AdminUser{}, err
	}
	return admin, nil
}

func (r *AdminRepository) GetByCredentials(ctx context.Context, email, password string) (models.AdminUser, error) {
	var admin models.AdminUser
	err := r.coll.FindOne(ctx, bson.M{"email": email, "password": password}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.AdminUser{}, ErrAdminNotFound
		}
		return models.AdminUser{}, err
	}
	return admin, nil
}

// EnsureDefault materializes the configured admin account on first
// boot. An existing account with the same email is left untouched.
func (r *AdminRepository) EnsureDefault(ctx context.Context, name, email, password string) error {
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	now := time.Now().UTC()
	_, err = r.coll.InsertOne(ctx, models.AdminUser{
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      "admin",
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}

// UpdateProfile patches name and email for the account currently under
// currentEmail, and the password too when newPassword is non-nil.
func (r *AdminRepository) UpdateProfile(ctx context.Context, currentEmail, name, email string, newPassword *string) error {
	set := bson.M{
		"name":       name,
		"email":      email,
		"updated_at": time.Now().UTC(),
	}
	if newPassword != nil {
		set["password"] = *newPassword
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"email": currentEmail}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAdminNotFound
	}
	return nil
}
