package storage

import (
	"time"

	"github.com/google/uuid"
)

// ProjectionSnapshot is one persisted engine result for a subject. The engine
// itself never persists anything; snapshots exist so the product can show a
// history without recomputing against raw samples.
type ProjectionSnapshot struct {
	ID                    uuid.UUID `json:"id"`
	SubjectID             string    `json:"subject_id"`
	Variant               string    `json:"variant"` // current, optimal, improved
	BaselineYears         float64   `json:"baseline_years"`
	HealthAdjustmentYears float64   `json:"health_adjustment_years"`
	AdjustedYears         float64   `json:"adjusted_years"`
	YearsRemaining        float64   `json:"years_remaining"`
	PercentageRemaining   float64   `json:"percentage_remaining"`
	BatteryLevelPercent   float64   `json:"battery_level_percent"`
	DefaultProfileUsed    bool      `json:"default_profile_used"`
	CreatedAt             time.Time `json:"created_at"`
}
