package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/core/ports/output"
)

type SelectionOptions struct {
	DefaultLimit     int
	MaxLimit         int
	PoolMultiplier   int
	MinPoolSize      int
	MinimumThreshold int
	PrimaryRatio     float64
	MaxParallel      int
}

func DefaultSelectionOptions() SelectionOptions {
	return SelectionOptions{
		DefaultLimit:     3,
		MaxLimit:         20,
		PoolMultiplier:   4,
		MinPoolSize:      30,
		MinimumThreshold: 20,
		PrimaryRatio:     0.7,
		MaxParallel:      8,
	}
}

// PoolSize is how many candidates are fetched per muscle before random selection.
func (o SelectionOptions) PoolSize(limit int) int {
	return max(limit*o.PoolMultiplier, o.MinPoolSize)
}

type ExerciseSelectionService struct {
	exerciseRepo ports.ExerciseRepository
	attrRepo     ports.AttributeRepository
	opts         SelectionOptions
	selector     *Selector
}

func NewExerciseSelectionService(exerciseRepo ports.ExerciseRepository, attrRepo ports.AttributeRepository, opts SelectionOptions, selector *Selector) *ExerciseSelectionService {
	if selector == nil {
		selector = NewSelector(opts.PrimaryRatio, nil)
	}
	return &ExerciseSelectionService{
		exerciseRepo: exerciseRepo,
		attrRepo:     attrRepo,
		opts:         opts,
		selector:     selector,
	}
}

// selectionAttributes are the attribute-name ids every per-muscle query needs.
type selectionAttributes struct {
	primary   uuid.UUID
	secondary uuid.UUID
	equipment uuid.UUID
}

// GetExercises returns up to req.Limit exercises for every requested muscle, dropping
// muscles that have no match. Groups keep the request order.
func (s *ExerciseSelectionService) GetExercises(ctx context.Context, req domain.SelectionRequest) ([]domain.MuscleSelection, error) {
	if len(req.Muscles) == 0 {
		return nil, domain.ErrNoMuscles
	}
	if len(req.Equipment) == 0 {
		return nil, domain.ErrNoEquipment
	}
	if req.Limit == 0 {
		req.Limit = s.opts.DefaultLimit
	}
	if req.Limit < 1 || req.Limit > s.opts.MaxLimit {
		return nil, fmt.Errorf("%w: must be between 1 and %d", domain.ErrInvalidLimit, s.opts.MaxLimit)
	}

	log.WithFields(log.Fields{
		"muscles":   req.Muscles,
		"equipment": req.Equipment,
		"limit":     req.Limit,
	}).Debug("selecting exercises")

	attrs, err := s.resolveAttributes(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrMissingAttributes) {
			log.WithError(err).Error("attribute names are not seeded")
		} else {
			log.WithError(err).Error("resolve attribute names failed")
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchExercises, err)
	}

	results := make([]domain.MuscleSelection, len(req.Muscles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxParallel)
	for i, muscle := range req.Muscles {
		g.Go(func() error {
			exercises, err := s.selectForMuscle(gctx, attrs, muscle, req.EquipmentValues(), req.Limit)
			if err != nil {
				return fmt.Errorf("muscle %s: %w", muscle, err)
			}
			results[i] = domain.MuscleSelection{Muscle: muscle, Exercises: exercises}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("fetch exercises failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchExercises, err)
	}

	filtered := make([]domain.MuscleSelection, 0, len(results))
	for _, group := range results {
		if len(group.Exercises) > 0 {
			filtered = append(filtered, group)
		}
	}

	log.WithFields(log.Fields{
		"requested": len(req.Muscles),
		"returned":  len(filtered),
	}).Info("exercise selection completed")

	return filtered, nil
}

func (s *ExerciseSelectionService) resolveAttributes(ctx context.Context) (selectionAttributes, error) {
	names := []domain.AttributeNameType{
		domain.AttributePrimaryMuscle,
		domain.AttributeSecondaryMuscle,
		domain.AttributeEquipment,
	}
	found := make([]*domain.AttributeName, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			attr, err := s.attrRepo.GetName(gctx, name)
			if err != nil {
				if errors.Is(err, domain.ErrAttributeNameNotFound) {
					return fmt.Errorf("%w: %s", domain.ErrMissingAttributes, name)
				}
				return err
			}
			found[i] = attr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return selectionAttributes{}, err
	}

	return selectionAttributes{
		primary:   found[0].ID,
		secondary: found[1].ID,
		equipment: found[2].ID,
	}, nil
}

func (s *ExerciseSelectionService) selectForMuscle(ctx context.Context, attrs selectionAttributes, muscle domain.MuscleGroup, equipment []string, limit int) ([]*domain.Exercise, error) {
	logger := log.WithField("muscle", muscle)
	poolSize := s.opts.PoolSize(limit)

	primary, err := s.exerciseRepo.FindByMuscle(ctx, ports.MuscleFilter{
		MuscleAttributeID:    attrs.primary,
		Muscle:               string(muscle),
		EquipmentAttributeID: attrs.equipment,
		Equipment:            equipment,
		ExcludeValues:        domain.ExcludedFromSelection,
		Limit:                poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("find primary exercises: %w", err)
	}
	logger.WithField("count", len(primary)).Debug("primary exercises found")

	var secondary []*domain.Exercise
	if len(primary) < s.opts.MinimumThreshold && poolSize > len(primary) {
		excludeIDs := make([]uuid.UUID, len(primary))
		for i, ex := range primary {
			excludeIDs[i] = ex.ID
		}
		secondary, err = s.exerciseRepo.FindByMuscle(ctx, ports.MuscleFilter{
			MuscleAttributeID:    attrs.secondary,
			Muscle:               string(muscle),
			EquipmentAttributeID: attrs.equipment,
			Equipment:            equipment,
			ExcludeValues:        domain.ExcludedFromSelection,
			ExcludeIDs:           excludeIDs,
			Limit:                poolSize - len(primary),
		})
		if err != nil {
			return nil, fmt.Errorf("find secondary exercises: %w", err)
		}
		logger.WithField("count", len(secondary)).Debug("secondary exercises found")
	}

	selected := s.selector.Select(primary, secondary, limit)
	logger.WithFields(log.Fields{
		"pool":     len(primary) + len(secondary),
		"selected": len(selected),
	}).Debug("muscle selection done")

	return selected, nil
}
