package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// GetPublicationsByRunID loads the publication snapshot stored for a run
func (db *DB) GetPublicationsByRunID(ctx context.Context, runID uuid.UUID) ([]types.Publication, error) {
	content, err := db.GetArtifact(ctx, runID, StepPublications)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var pubs []types.Publication
	if err := json.Unmarshal(content, &pubs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal publications: %w", err)
	}
	return pubs, nil
}

// GetControlMappingsByRunID loads control mappings from database for a run
func (db *DB) GetControlMappingsByRunID(ctx context.Context, runID uuid.UUID) (*types.ControlMappings, error) {
	content, err := db.GetArtifact(ctx, runID, StepControlMappings)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var mappings types.ControlMappings
	if err := json.Unmarshal(content, &mappings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal control mappings: %w", err)
	}
	return &mappings, nil
}

// GetValidationByRunID loads the validation result from database for a run
func (db *DB) GetValidationByRunID(ctx context.Context, runID uuid.UUID) (*types.Result, error) {
	content, err := db.GetArtifact(ctx, runID, StepValidation)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result types.Result
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal validation result: %w", err)
	}
	return &result, nil
}

// GetSummaryByRunID loads the rendered digest markdown for a run
func (db *DB) GetSummaryByRunID(ctx context.Context, runID uuid.UUID) (string, error) {
	return db.GetTextArtifact(ctx, runID, StepSummary)
}
