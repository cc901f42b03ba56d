package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UploadedFile describes one attachment persisted under the uploads
// directory. SavedName is the generated on-disk name; OriginalName is
// whatever the client sent.
type UploadedFile struct {
	OriginalName string `json:"original_name" bson:"original_name"`
	SavedName    string `json:"saved_name" bson:"saved_name"`
	FileSize     int64  `json:"file_size" bson:"file_size"`
	ContentType  string `json:"content_type" bson:"content_type"`
}

// Submission is one contact-form entry. Status is a free-form string;
// the server accepts and persists whatever the admin UI sends.
type Submission struct {
	ID            bson.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Name          string         `json:"name" bson:"name"`
	Phone         string         `json:"phone" bson:"phone"`
	Email         string         `json:"email" bson:"email"`
	Message       string         `json:"message" bson:"message"`
	UploadedFiles []UploadedFile `json:"uploaded_files" bson:"uploaded_files"`
	SubmittedAt   time.Time      `json:"submitted_at" bson:"submitted_at"`
	IPAddress     string         `json:"ip_address" bson:"ip_address"`
	UserAgent     string         `json:"user_agent" bson:"user_agent"`
	Status        string         `json:"status" bson:"status"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// StatusCount is one bucket of the stats breakdown aggregation.
type StatusCount struct {
	Status string `json:"_id" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// DailyCount is one day's submission total from the stats aggregation.
type DailyCount struct {
	Date  string `json:"_id" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}
