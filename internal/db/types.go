package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a digest run record
type Run struct {
	ID               uuid.UUID  `json:"id"`
	PublicationCount int        `json:"publication_count"`
	Status           string     `json:"status"`
	Verdict          string     `json:"verdict,omitempty"`
	SummaryPath      string     `json:"summary_path,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// ArtifactStep constants for known artifact types
const (
	StepPublications    = "publications"
	StepFilteredContent = "filtered_content"
	StepControlMappings = "control_mappings"
	StepSummary         = "summary"
	StepValidation      = "validation"
)

// Artifact category constants group steps by pipeline phase
const (
	CategoryCatalog    = "catalog"
	CategoryContent    = "content"
	CategoryAnalysis   = "analysis"
	CategoryValidation = "validation"
)
