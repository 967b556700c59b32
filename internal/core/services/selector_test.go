package services

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workout-builder-service/internal/core/domain"
	"workout-builder-service/internal/testutil"
)

func seededSelector(ratio float64, seed uint64) *Selector {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return NewSelector(ratio, r.IntN)
}

func countFrom(selected, tier []*domain.Exercise) int {
	ids := make(map[string]bool, len(tier))
	for _, ex := range tier {
		ids[ex.ID.String()] = true
	}
	n := 0
	for _, ex := range selected {
		if ids[ex.ID.String()] {
			n++
		}
	}
	return n
}

func TestSelector_ZeroLimit(t *testing.T) {
	s := seededSelector(0.7, 1)
	got := s.Select(testutil.NewExercises(5, domain.MuscleChest), nil, 0)
	assert.Empty(t, got)
}

func TestSelector_WeightedMix(t *testing.T) {
	primary := testutil.NewExercises(10, domain.MuscleChest)
	secondary := testutil.NewExercises(10, domain.MuscleTriceps)
	s := seededSelector(0.7, 42)

	got := s.Select(primary, secondary, 5)

	require.Len(t, got, 5)
	// ceil(5 * 0.7) = 4 primary, 1 secondary
	assert.Equal(t, 4, countFrom(got, primary))
	assert.Equal(t, 1, countFrom(got, secondary))
}

func TestSelector_PrimaryFillsWhenNoSecondary(t *testing.T) {
	primary := testutil.NewExercises(10, domain.MuscleChest)
	s := seededSelector(0.7, 7)

	got := s.Select(primary, nil, 5)

	require.Len(t, got, 5)
	assert.Equal(t, 5, countFrom(got, primary))
}

func TestSelector_SecondaryBackfillsEmptyPrimary(t *testing.T) {
	secondary := testutil.NewExercises(10, domain.MuscleNeck)
	s := seededSelector(0.7, 7)

	got := s.Select(nil, secondary, 3)

	require.Len(t, got, 3)
	assert.Equal(t, 3, countFrom(got, secondary))
}

func TestSelector_SmallPools(t *testing.T) {
	primary := testutil.NewExercises(1, domain.MuscleCalves)
	secondary := testutil.NewExercises(1, domain.MuscleCalves)
	s := seededSelector(0.7, 3)

	got := s.Select(primary, secondary, 5)

	assert.Len(t, got, 2)
}

func TestSelector_DropsSecondaryDuplicatesOfPrimary(t *testing.T) {
	primary := testutil.NewExercises(2, domain.MuscleBack)
	secondary := append([]*domain.Exercise{primary[0], primary[1]}, testutil.NewExercises(1, domain.MuscleBack)...)
	s := seededSelector(0.7, 9)

	got := s.Select(primary, secondary, 10)

	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, ex := range got {
		assert.False(t, seen[ex.ID.String()], "duplicate exercise %s", ex.ID)
		seen[ex.ID.String()] = true
	}
}

func TestSelector_DeterministicWithSameSeed(t *testing.T) {
	primary := testutil.NewExercises(20, domain.MuscleGlutes)
	secondary := testutil.NewExercises(20, domain.MuscleHamstrings)

	a := seededSelector(0.7, 11).Select(primary, secondary, 6)
	b := seededSelector(0.7, 11).Select(primary, secondary, 6)

	assert.Equal(t, a, b)
}

func TestSelector_DoesNotMutateInput(t *testing.T) {
	primary := testutil.NewExercises(8, domain.MuscleLats)
	before := make([]*domain.Exercise, len(primary))
	copy(before, primary)

	seededSelector(0.7, 5).Select(primary, nil, 4)

	assert.Equal(t, before, primary)
}

func TestSelector_Invariants(t *testing.T) {
	r := rand.New(rand.NewPCG(100, 200))
	s := NewSelector(0.7, r.IntN)

	for i := 0; i < 200; i++ {
		primary := testutil.NewExercises(r.IntN(15), domain.MuscleChest)
		secondary := testutil.NewExercises(r.IntN(15), domain.MuscleShoulders)
		limit := 1 + r.IntN(12)

		got := s.Select(primary, secondary, limit)

		assert.LessOrEqual(t, len(got), limit)
		assert.Equal(t, min(limit, len(primary)+len(secondary)), len(got))
		assert.Equal(t, len(got), countFrom(got, primary)+countFrom(got, secondary))

		seen := map[string]bool{}
		for _, ex := range got {
			require.False(t, seen[ex.ID.String()])
			seen[ex.ID.String()] = true
		}

		// Primary takes every slot the secondary share does not claim.
		secondaryShare := limit - int(math.Ceil(float64(limit)*0.7))
		wantPrimary := min(len(primary), limit-min(secondaryShare, len(secondary)))
		assert.Equal(t, wantPrimary, countFrom(got, primary))
	}
}
