package ports

import (
	"context"

	"github.com/google/uuid"

	"workout-builder-service/internal/core/domain"
)

// MuscleFilter selects exercises for one muscle tier. The muscle must be attached under
// MuscleAttributeID, at least one of Equipment under EquipmentAttributeID, and none of
// ExcludeValues under any attribute name.
type MuscleFilter struct {
	MuscleAttributeID    uuid.UUID
	Muscle               string
	EquipmentAttributeID uuid.UUID
	Equipment            []string
	ExcludeValues        []string
	ExcludeIDs           []uuid.UUID
	Limit                int
}

type ExerciseRepository interface {
	FindByMuscle(ctx context.Context, filter MuscleFilter) ([]*domain.Exercise, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
}

type AttributeRepository interface {
	GetName(ctx context.Context, name domain.AttributeNameType) (*domain.AttributeName, error)
	ListValues(ctx context.Context, name domain.AttributeNameType) ([]*domain.AttributeValue, error)
}

// ImportStats summarizes one catalog import.
type ImportStats struct {
	ExercisesCreated int `json:"exercises_created"`
	ExercisesUpdated int `json:"exercises_updated"`
	ValuesCreated    int `json:"values_created"`
	LinksCreated     int `json:"links_created"`
}

// CatalogWriter persists a full exercise catalog atomically.
type CatalogWriter interface {
	Import(ctx context.Context, exercises []*domain.Exercise) (ImportStats, error)
}
