package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/core/ports/output"
)

// MockExerciseRepo is a mock of ExerciseRepository.
type MockExerciseRepo struct {
	mock.Mock
}

func (m *MockExerciseRepo) FindByMuscle(ctx context.Context, filter ports.MuscleFilter) ([]*domain.Exercise, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

// MockAttributeRepo is a mock of AttributeRepository.
type MockAttributeRepo struct {
	mock.Mock
}

func (m *MockAttributeRepo) GetName(ctx context.Context, name domain.AttributeNameType) (*domain.AttributeName, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttributeName), args.Error(1)
}

func (m *MockAttributeRepo) ListValues(ctx context.Context, name domain.AttributeNameType) ([]*domain.AttributeValue, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AttributeValue), args.Error(1)
}

// SeedAttributeNames registers GetName expectations for the three selection attributes
// and returns them keyed by name.
func (m *MockAttributeRepo) SeedAttributeNames() map[domain.AttributeNameType]*domain.AttributeName {
	names := map[domain.AttributeNameType]*domain.AttributeName{}
	for _, n := range []domain.AttributeNameType{
		domain.AttributePrimaryMuscle,
		domain.AttributeSecondaryMuscle,
		domain.AttributeEquipment,
	} {
		attr := &domain.AttributeName{ID: uuid.New(), Name: n}
		names[n] = attr
		m.On("GetName", mock.Anything, n).Return(attr, nil)
	}
	return names
}

// MockCatalogWriter is a mock of CatalogWriter.
type MockCatalogWriter struct {
	mock.Mock
}

func (m *MockCatalogWriter) Import(ctx context.Context, exercises []*domain.Exercise) (ports.ImportStats, error) {
	args := m.Called(ctx, exercises)
	return args.Get(0).(ports.ImportStats), args.Error(1)
}

// NewExercises builds n exercises tagged with the given primary muscle.
func NewExercises(n int, muscle domain.MuscleGroup) []*domain.Exercise {
	out := make([]*domain.Exercise, n)
	for i := range out {
		id := uuid.New()
		out[i] = &domain.Exercise{
			ID:   id,
			Name: string(muscle) + "-" + id.String()[:8],
			Slug: id.String(),
			Attributes: []domain.ExerciseAttribute{
				{
					ID:             uuid.New(),
					ExerciseID:     id,
					AttributeName:  domain.AttributeName{Name: domain.AttributePrimaryMuscle},
					AttributeValue: domain.AttributeValue{Value: string(muscle)},
				},
			},
		}
	}
	return out
}
