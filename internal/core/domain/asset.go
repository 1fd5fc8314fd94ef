package domain

import (
	"errors"
	"time"
)

// AssetSource identifies who produced an asset.
type AssetSource string

const (
	AssetSourceCustomer AssetSource = "customer"
	AssetSourceStudio   AssetSource = "north_bound"
)

var ErrAssetNotFound = errors.New("asset not found")

// ParseAssetSource validates a raw asset source string.
func ParseAssetSource(s string) (AssetSource, error) {
	switch AssetSource(s) {
	case AssetSourceCustomer, AssetSourceStudio:
		return AssetSource(s), nil
	}
	return "", ErrValidation
}

// Asset is a piece of uploaded footage or deliverable metadata. The binary
// itself lives behind FileURL in external storage.
type Asset struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	ProjectID  string      `json:"project_id" bson:"project_id"`
	Name       string      `json:"name" bson:"name"`
	Type       string      `json:"type" bson:"type"`
	FileURL    string      `json:"file_url" bson:"file_url"`
	SizeGB     float64     `json:"size_gb" bson:"size_gb"`
	Source     AssetSource `json:"source" bson:"source"`
	UploadedBy string      `json:"uploaded_by" bson:"uploaded_by"`
	UploadedAt time.Time   `json:"uploaded_at" bson:"uploaded_at"`
}
