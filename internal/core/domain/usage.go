package domain

import "time"

// UsageRecord is a customer's metered consumption for one calendar month.
// Month uses the "2006-01" format.
type UsageRecord struct {
	ID              string  `json:"id" bson:"_id,omitempty"`
	UserID          string  `json:"user_id" bson:"user_id"`
	Month           string  `json:"month" bson:"month"`
	StorageUsedGB   float64 `json:"storage_used_gb" bson:"storage_used_gb"`
	TransferUsedGB  float64 `json:"transfer_used_gb" bson:"transfer_used_gb"`
	StorageCostUSD  float64 `json:"storage_cost_usd" bson:"storage_cost_usd"`
	TransferCostUSD float64 `json:"transfer_cost_usd" bson:"transfer_cost_usd"`
}

// UsageSample is a point-in-time reading feeding the usage charts.
type UsageSample struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	UserID          string    `json:"user_id" bson:"user_id"`
	StorageUsedGB   float64   `json:"storage_used_gb" bson:"storage_used_gb"`
	BandwidthUsedGB float64   `json:"bandwidth_used_gb" bson:"bandwidth_used_gb"`
	RecordedAt      time.Time `json:"recorded_at" bson:"recorded_at"`
}
