package domain

import (
	"errors"
	"time"
)

var (
	ErrVideographerNotFound = errors.New("videographer not found")
	ErrVideographerExists   = errors.New("videographer already exists")
)

// VideographerProfile holds the directory entry a videographer maintains and
// admins browse when assigning projects. ID is the videographer's user
// account id, so profile lookups and project assignment share one id space.
type VideographerProfile struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Location       string    `json:"location,omitempty" bson:"location,omitempty"`
	PortfolioURL   string    `json:"portfolio_url,omitempty" bson:"portfolio_url,omitempty"`
	Certifications string    `json:"certifications,omitempty" bson:"certifications,omitempty"`
	GearList       string    `json:"gear_list,omitempty" bson:"gear_list,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
