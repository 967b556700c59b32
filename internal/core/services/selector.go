package services

import (
	"math"
	"math/rand/v2"

	"workout-builder-service/internal/core/domain"
)

// Selector draws a weighted random subset from a primary and a secondary exercise tier.
type Selector struct {
	primaryRatio float64
	intn         func(n int) int
}

// NewSelector returns a Selector. A nil intn uses the package-level math/rand/v2 source,
// which is safe for concurrent use.
func NewSelector(primaryRatio float64, intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.IntN
	}
	return &Selector{primaryRatio: primaryRatio, intn: intn}
}

// Select returns at most limit exercises. Roughly primaryRatio of the slots go to the
// primary tier; the rest are filled from the secondary tier, then from leftover primary,
// then from leftover secondary.
func (s *Selector) Select(primary, secondary []*domain.Exercise, limit int) []*domain.Exercise {
	if limit <= 0 {
		return []*domain.Exercise{}
	}

	inPrimary := make(map[string]bool, len(primary))
	for _, ex := range primary {
		inPrimary[ex.ID.String()] = true
	}
	onlySecondary := make([]*domain.Exercise, 0, len(secondary))
	for _, ex := range secondary {
		if !inPrimary[ex.ID.String()] {
			onlySecondary = append(onlySecondary, ex)
		}
	}

	shuffledPrimary := s.shuffle(primary)
	shuffledSecondary := s.shuffle(onlySecondary)

	targetPrimary := int(math.Ceil(float64(limit) * s.primaryRatio))
	if targetPrimary > limit {
		targetPrimary = limit
	}
	targetSecondary := limit - targetPrimary

	selected := make([]*domain.Exercise, 0, limit)
	usedPrimary := min(targetPrimary, len(shuffledPrimary))
	selected = append(selected, shuffledPrimary[:usedPrimary]...)

	usedSecondary := 0
	if len(selected) < limit {
		usedSecondary = min(targetSecondary, len(shuffledSecondary))
		selected = append(selected, shuffledSecondary[:usedSecondary]...)

		if need := limit - len(selected); need > 0 && len(shuffledPrimary) > usedPrimary {
			extra := min(need, len(shuffledPrimary)-usedPrimary)
			selected = append(selected, shuffledPrimary[usedPrimary:usedPrimary+extra]...)
		}

		// Backfill from the fallback tier when the primary tier ran dry.
		if need := limit - len(selected); need > 0 && len(shuffledSecondary) > usedSecondary {
			extra := min(need, len(shuffledSecondary)-usedSecondary)
			selected = append(selected, shuffledSecondary[usedSecondary:usedSecondary+extra]...)
		}
	}

	final := s.shuffle(selected)
	if len(final) > limit {
		final = final[:limit]
	}
	return final
}

// shuffle returns a Fisher-Yates shuffled copy of in.
func (s *Selector) shuffle(in []*domain.Exercise) []*domain.Exercise {
	out := make([]*domain.Exercise, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
