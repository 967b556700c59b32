package domain

import "errors"

// ============================================================================
// Selection Errors
// ============================================================================

// Validation errors
var (
	ErrNoMuscles        = errors.New("at least one muscle group is required")
	ErrNoEquipment      = errors.New("at least one equipment type is required")
	ErrInvalidMuscle    = errors.New("unknown muscle group")
	ErrInvalidEquipment = errors.New("unknown equipment")
	ErrInvalidLimit     = errors.New("limit is out of range")
)

// Failure errors
var (
	ErrMissingAttributes = errors.New("missing attributes in database")
	ErrFetchExercises    = errors.New("error fetching exercises")
)

// ============================================================================
// Catalog Errors
// ============================================================================

var (
	ErrExerciseNotFound      = errors.New("exercise not found")
	ErrAttributeNameNotFound = errors.New("attribute name not found")
	ErrInvalidAttributeName  = errors.New("unknown attribute name")
	ErrInvalidExerciseName   = errors.New("exercise name is required")
	ErrInvalidExerciseSlug   = errors.New("exercise slug is required")
	ErrInvalidExerciseType   = errors.New("unknown exercise type")
	ErrInvalidMechanicsType  = errors.New("unknown mechanics type")
	ErrMissingPrimaryMuscle  = errors.New("exercise needs at least one primary muscle")
	ErrExerciseSlugConflict  = errors.New("exercise with this slug already exists")
)
