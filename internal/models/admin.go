package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AdminUser is the single admin account. The password is stored and
// compared as plaintext; there is no session protocol on top of it.
type AdminUser struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string        `json:"name" bson:"name"`
	Email     string        `json:"email" bson:"email"`
	Password  string        `json:"-" bson:"password"`
	Role      string        `json:"role" bson:"role"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
