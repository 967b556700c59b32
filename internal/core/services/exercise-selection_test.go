package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/core/ports/output"
	"workout-builder-service/internal/testutil"
)

func newSelectionService(t *testing.T) (*testutil.MockExerciseRepo, *testutil.MockAttributeRepo, map[domain.AttributeNameType]*domain.AttributeName, *ExerciseSelectionService) {
	t.Helper()
	exerciseRepo := new(testutil.MockExerciseRepo)
	attrRepo := new(testutil.MockAttributeRepo)
	names := attrRepo.SeedAttributeNames()
	svc := NewExerciseSelectionService(exerciseRepo, attrRepo, DefaultSelectionOptions(), nil)
	return exerciseRepo, attrRepo, names, svc
}

func tierFilter(attr *domain.AttributeName, muscle domain.MuscleGroup) interface{} {
	return mock.MatchedBy(func(f ports.MuscleFilter) bool {
		return f.MuscleAttributeID == attr.ID && f.Muscle == string(muscle)
	})
}

func TestExerciseSelectionService_PrimaryOnly(t *testing.T) {
	exerciseRepo, _, names, svc := newSelectionService(t)

	primary := testutil.NewExercises(25, domain.MuscleChest)
	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(names[domain.AttributePrimaryMuscle], domain.MuscleChest)).Return(primary, nil)

	req := domain.SelectionRequest{
		Muscles:   []domain.MuscleGroup{domain.MuscleChest},
		Equipment: []domain.Equipment{domain.EquipmentDumbbell},
		Limit:     3,
	}
	result, err := svc.GetExercises(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, domain.MuscleChest, result[0].Muscle)
	assert.Len(t, result[0].Exercises, 3)
	// 25 primary candidates clear the threshold, so the secondary tier is never queried.
	exerciseRepo.AssertNumberOfCalls(t, "FindByMuscle", 1)
}

func TestExerciseSelectionService_SecondaryFallback(t *testing.T) {
	exerciseRepo, _, names, svc := newSelectionService(t)

	primary := testutil.NewExercises(5, domain.MuscleBiceps)
	secondary := testutil.NewExercises(10, domain.MuscleBiceps)

	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(names[domain.AttributePrimaryMuscle], domain.MuscleBiceps)).Return(primary, nil)
	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(names[domain.AttributeSecondaryMuscle], domain.MuscleBiceps)).Return(secondary, nil)

	req := domain.SelectionRequest{
		Muscles:   []domain.MuscleGroup{domain.MuscleBiceps},
		Equipment: []domain.Equipment{domain.EquipmentDumbbell, domain.EquipmentCable},
		Limit:     10,
	}
	result, err := svc.GetExercises(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].Exercises, 10)
	assert.Equal(t, 5, countFrom(result[0].Exercises, primary))

	// The secondary query excludes primary ids and only asks for the remaining pool.
	exerciseRepo.AssertCalled(t, "FindByMuscle", mock.Anything, mock.MatchedBy(func(f ports.MuscleFilter) bool {
		return f.MuscleAttributeID == names[domain.AttributeSecondaryMuscle].ID &&
			len(f.ExcludeIDs) == 5 &&
			f.Limit == 40-5 &&
			f.EquipmentAttributeID == names[domain.AttributeEquipment].ID &&
			assert.ObjectsAreEqual([]string{"DUMBBELL", "CABLE"}, f.Equipment) &&
			assert.ObjectsAreEqual([]string{string(domain.TypeStretching)}, f.ExcludeValues)
	}))
}

func TestExerciseSelectionService_DropsEmptyGroupsAndKeepsOrder(t *testing.T) {
	exerciseRepo, _, names, svc := newSelectionService(t)

	primaryAttr := names[domain.AttributePrimaryMuscle]
	secondaryAttr := names[domain.AttributeSecondaryMuscle]
	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(primaryAttr, domain.MuscleGlutes)).Return(testutil.NewExercises(30, domain.MuscleGlutes), nil)
	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(primaryAttr, domain.MuscleNeck)).Return([]*domain.Exercise{}, nil)
	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(secondaryAttr, domain.MuscleNeck)).Return([]*domain.Exercise{}, nil)
	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(primaryAttr, domain.MuscleAbdominals)).Return(testutil.NewExercises(30, domain.MuscleAbdominals), nil)

	req := domain.SelectionRequest{
		Muscles:   []domain.MuscleGroup{domain.MuscleGlutes, domain.MuscleNeck, domain.MuscleAbdominals},
		Equipment: []domain.Equipment{domain.EquipmentBodyOnly},
		Limit:     2,
	}
	result, err := svc.GetExercises(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, domain.MuscleGlutes, result[0].Muscle)
	assert.Equal(t, domain.MuscleAbdominals, result[1].Muscle)
}

func TestExerciseSelectionService_DefaultLimit(t *testing.T) {
	exerciseRepo, _, names, svc := newSelectionService(t)
	exerciseRepo.On("FindByMuscle", mock.Anything, tierFilter(names[domain.AttributePrimaryMuscle], domain.MuscleChest)).Return(testutil.NewExercises(30, domain.MuscleChest), nil)

	result, err := svc.GetExercises(context.Background(), domain.SelectionRequest{
		Muscles:   []domain.MuscleGroup{domain.MuscleChest},
		Equipment: []domain.Equipment{domain.EquipmentBarbell},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Len(t, result[0].Exercises, DefaultSelectionOptions().DefaultLimit)
}

func TestExerciseSelectionService_InvalidInput(t *testing.T) {
	exerciseRepo := new(testutil.MockExerciseRepo)
	attrRepo := new(testutil.MockAttributeRepo)
	svc := NewExerciseSelectionService(exerciseRepo, attrRepo, DefaultSelectionOptions(), nil)
	ctx := context.Background()

	_, err := svc.GetExercises(ctx, domain.SelectionRequest{Equipment: []domain.Equipment{domain.EquipmentBench}, Limit: 3})
	assert.ErrorIs(t, err, domain.ErrNoMuscles)

	_, err = svc.GetExercises(ctx, domain.SelectionRequest{Muscles: []domain.MuscleGroup{domain.MuscleChest}, Limit: 3})
	assert.ErrorIs(t, err, domain.ErrNoEquipment)

	_, err = svc.GetExercises(ctx, domain.SelectionRequest{
		Muscles:   []domain.MuscleGroup{domain.MuscleChest},
		Equipment: []domain.Equipment{domain.EquipmentBench},
		Limit:     21,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	exerciseRepo.AssertNotCalled(t, "FindByMuscle", mock.Anything, mock.Anything)
	attrRepo.AssertNotCalled(t, "GetName", mock.Anything, mock.Anything)
}

func TestExerciseSelectionService_MissingAttributes(t *testing.T) {
	exerciseRepo := new(testutil.MockExerciseRepo)
	attrRepo := new(testutil.MockAttributeRepo)
	attrRepo.On("GetName", mock.Anything, domain.AttributePrimaryMuscle).Return(&domain.AttributeName{Name: domain.AttributePrimaryMuscle}, nil)
	attrRepo.On("GetName", mock.Anything, domain.AttributeSecondaryMuscle).Return(nil, domain.ErrAttributeNameNotFound)
	attrRepo.On("GetName", mock.Anything, domain.AttributeEquipment).Return(&domain.AttributeName{Name: domain.AttributeEquipment}, nil)
	svc := NewExerciseSelectionService(exerciseRepo, attrRepo, DefaultSelectionOptions(), nil)

	_, err := svc.GetExercises(context.Background(), domain.SelectionRequest{
		Muscles:   []domain.MuscleGroup{domain.MuscleChest},
		Equipment: []domain.Equipment{domain.EquipmentBench},
		Limit:     3,
	})
	assert.ErrorIs(t, err, domain.ErrFetchExercises)
	assert.ErrorIs(t, err, domain.ErrMissingAttributes)
	exerciseRepo.AssertNotCalled(t, "FindByMuscle", mock.Anything, mock.Anything)
}

func TestExerciseSelectionService_RepositoryFailure(t *testing.T) {
	exerciseRepo, _, _, svc := newSelectionService(t)
	dbErr := errors.New("connection reset")
	exerciseRepo.On("FindByMuscle", mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := svc.GetExercises(context.Background(), domain.SelectionRequest{
		Muscles:   []domain.MuscleGroup{domain.MuscleChest, domain.MuscleBack},
		Equipment: []domain.Equipment{domain.EquipmentMachine},
		Limit:     3,
	})
	assert.ErrorIs(t, err, domain.ErrFetchExercises)
	assert.ErrorIs(t, err, dbErr)
}

func TestSelectionOptions_PoolSize(t *testing.T) {
	opts := DefaultSelectionOptions()
	assert.Equal(t, 30, opts.PoolSize(3))
	assert.Equal(t, 30, opts.PoolSize(7))
	assert.Equal(t, 40, opts.PoolSize(10))
}
