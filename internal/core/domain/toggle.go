package domain

import (
	"errors"
	"time"
)

var ErrToggleNotFound = errors.New("feature toggle not found")

// FeatureToggle gates an optional platform feature.
type FeatureToggle struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"feature_name" bson:"feature_name"`
	Enabled   bool      `json:"enabled" bson:"enabled"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
