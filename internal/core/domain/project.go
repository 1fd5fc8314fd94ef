package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the lifecycle state of a production project.
type ProjectStatus string

const (
	ProjectDraft      ProjectStatus = "draft"
	ProjectSubmitted  ProjectStatus = "submitted"
	ProjectEstimating ProjectStatus = "estimating"
	ProjectApproved   ProjectStatus = "approved"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectReview     ProjectStatus = "review"
	ProjectRevision   ProjectStatus = "revision"
	ProjectComplete   ProjectStatus = "complete"
)

// projectTransitions defines the allowed state machine transitions.
var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectDraft:      {ProjectSubmitted},
	ProjectSubmitted:  {ProjectEstimating},
	ProjectEstimating: {ProjectApproved},
	ProjectApproved:   {ProjectInProgress},
	ProjectInProgress: {ProjectReview},
	ProjectReview:     {ProjectRevision, ProjectComplete},
	ProjectRevision:   {ProjectReview},
}

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Project is the central aggregate tying a customer brief to the
// videographer delivering it.
type Project struct {
	ID                     string        `json:"id" bson:"_id,omitempty"`
	Title                  string        `json:"title" bson:"title"`
	CustomerID             string        `json:"customer_id" bson:"customer_id"`
	AssignedVideographerID string        `json:"assigned_videographer_id,omitempty" bson:"assigned_videographer_id,omitempty"`
	Status                 ProjectStatus `json:"status" bson:"status"`
	Script                 string        `json:"script,omitempty" bson:"script,omitempty"`
	ScriptCompleted        bool          `json:"script_completed" bson:"script_completed"`
	Deadline               *time.Time    `json:"deadline,omitempty" bson:"deadline,omitempty"`
	AssetsCount            int           `json:"assets_count" bson:"assets_count"`
	StorageUsedGB          float64       `json:"storage_used_gb" bson:"storage_used_gb"`
	TransferUsedGB         float64       `json:"transfer_used_gb" bson:"transfer_used_gb"`
	CreatedAt              time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt              time.Time     `json:"updated_at" bson:"updated_at"`
}
