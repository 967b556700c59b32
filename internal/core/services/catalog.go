package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/core/ports/output"
)

type CatalogService struct {
	exerciseRepo ports.ExerciseRepository
	attrRepo     ports.AttributeRepository
	writer       ports.CatalogWriter
}

// NewCatalogService wires catalog reads and imports. writer may be nil for read-only use.
func NewCatalogService(exerciseRepo ports.ExerciseRepository, attrRepo ports.AttributeRepository, writer ports.CatalogWriter) *CatalogService {
	return &CatalogService{exerciseRepo: exerciseRepo, attrRepo: attrRepo, writer: writer}
}

func (s *CatalogService) GetExercise(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	return s.exerciseRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListAttributeValues(ctx context.Context, name domain.AttributeNameType) ([]*domain.AttributeValue, error) {
	if _, err := domain.ParseAttributeName(string(name)); err != nil {
		return nil, err
	}
	return s.attrRepo.ListValues(ctx, name)
}

// ListMuscles returns the union of primary and secondary muscle values, sorted by value.
func (s *CatalogService) ListMuscles(ctx context.Context) ([]*domain.AttributeValue, error) {
	primary, err := s.attrRepo.ListValues(ctx, domain.AttributePrimaryMuscle)
	if err != nil {
		return nil, err
	}
	secondary, err := s.attrRepo.ListValues(ctx, domain.AttributeSecondaryMuscle)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(primary)+len(secondary))
	out := make([]*domain.AttributeValue, 0, len(primary)+len(secondary))
	for _, v := range slices.Concat(primary, secondary) {
		if seen[v.Value] {
			continue
		}
		seen[v.Value] = true
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b *domain.AttributeValue) int {
		return strings.Compare(a.Value, b.Value)
	})
	return out, nil
}

// Import validates every exercise and writes the catalog. Nothing is written when any
// entry is invalid or a slug repeats.
func (s *CatalogService) Import(ctx context.Context, exercises []*domain.Exercise) (ports.ImportStats, error) {
	if err := ValidateCatalog(exercises); err != nil {
		return ports.ImportStats{}, err
	}
	if s.writer == nil {
		return ports.ImportStats{}, fmt.Errorf("catalog writer not configured")
	}

	stats, err := s.writer.Import(ctx, exercises)
	if err != nil {
		return ports.ImportStats{}, err
	}

	log.WithFields(log.Fields{
		"created": stats.ExercisesCreated,
		"updated": stats.ExercisesUpdated,
		"values":  stats.ValuesCreated,
		"links":   stats.LinksCreated,
	}).Info("catalog imported")
	return stats, nil
}

func ValidateCatalog(exercises []*domain.Exercise) error {
	slugs := make(map[string]int, len(exercises))
	for i, ex := range exercises {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("exercise #%d (%s): %w", i+1, ex.Slug, err)
		}
		if prev, ok := slugs[ex.Slug]; ok {
			return fmt.Errorf("exercise #%d (%s) repeats #%d: %w", i+1, ex.Slug, prev, domain.ErrExerciseSlugConflict)
		}
		slugs[ex.Slug] = i + 1
	}
	return nil
}
