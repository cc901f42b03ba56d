package models

import "time"

// ImageOverride layers mutable state over one immutable catalog slot.
// The document's _id is the slot id itself. A slot with no override
// document renders the catalog default URL verbatim.
type ImageOverride struct {
	ID              string     `json:"-" bson:"_id"`
	Name            string     `json:"name" bson:"name"`
	Description     string     `json:"description" bson:"description"`
	CurrentURL      string     `json:"current_url" bson:"current_url"`
	DefaultURL      string     `json:"default_url" bson:"default_url"`
	Locations       []string   `json:"locations" bson:"locations"`
	RecommendedSize string     `json:"recommended_size" bson:"recommended_size"`
	Category        string     `json:"category" bson:"category"`
	CreatedAt       *time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ImagePathPrefix marks current_url values that point at a locally
// stored upload rather than a catalog default.
const ImagePathPrefix = "/images/"

// LocalImageFile returns the on-disk filename referenced by the
// override, or "" when the current URL is not a local upload.
func (o ImageOverride) LocalImageFile() string {
	if len(o.CurrentURL) > len(ImagePathPrefix) && o.CurrentURL[:len(ImagePathPrefix)] == ImagePathPrefix {
		return o.CurrentURL[len(ImagePathPrefix):]
	}
	return ""
}
