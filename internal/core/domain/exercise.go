package domain

import (
	"time"

	"github.com/google/uuid"
)

type Exercise struct {
	ID                uuid.UUID           `json:"id"`
	Name              string              `json:"name"`
	NameEn            string              `json:"name_en"`
	Description       string              `json:"description"`
	DescriptionEn     string              `json:"description_en"`
	FullVideoURL      string              `json:"full_video_url"`
	FullVideoImageURL string              `json:"full_video_image_url"`
	Introduction      string              `json:"introduction"`
	IntroductionEn    string              `json:"introduction_en"`
	Slug              string              `json:"slug"`
	SlugEn            string              `json:"slug_en"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Attributes        []ExerciseAttribute `json:"attributes"`
}

// AttributeName is a row of the attribute-name lookup table (PRIMARY_MUSCLE, EQUIPMENT, ...).
type AttributeName struct {
	ID   uuid.UUID         `json:"id"`
	Name AttributeNameType `json:"name"`
}

type AttributeValue struct {
	ID              uuid.UUID `json:"id"`
	AttributeNameID uuid.UUID `json:"attribute_name_id"`
	Value           string    `json:"value"`
}

type ExerciseAttribute struct {
	ID             uuid.UUID      `json:"id"`
	ExerciseID     uuid.UUID      `json:"exercise_id"`
	AttributeName  AttributeName  `json:"attribute_name"`
	AttributeValue AttributeValue `json:"attribute_value"`
}

// ValuesOf returns the attribute values attached under the given name, in stored order.
func (e *Exercise) ValuesOf(name AttributeNameType) []string {
	var out []string
	for _, a := range e.Attributes {
		if a.AttributeName.Name == name {
			out = append(out, a.AttributeValue.Value)
		}
	}
	return out
}

// HasValue reports whether any attribute of the exercise carries value, regardless of name.
func (e *Exercise) HasValue(value string) bool {
	for _, a := range e.Attributes {
		if a.AttributeValue.Value == value {
			return true
		}
	}
	return false
}

// Validate checks an exercise before it is written to the catalog.
func (e *Exercise) Validate() error {
	if e.Name == "" {
		return ErrInvalidExerciseName
	}
	if e.Slug == "" {
		return ErrInvalidExerciseSlug
	}
	if len(e.ValuesOf(AttributePrimaryMuscle)) == 0 {
		return ErrMissingPrimaryMuscle
	}
	for _, a := range e.Attributes {
		if _, err := ParseAttributeName(string(a.AttributeName.Name)); err != nil {
			return err
		}
		switch a.AttributeName.Name {
		case AttributePrimaryMuscle, AttributeSecondaryMuscle:
			if _, err := ParseMuscleGroup(a.AttributeValue.Value); err != nil {
				return err
			}
		case AttributeEquipment:
			if _, err := ParseEquipment(a.AttributeValue.Value); err != nil {
				return err
			}
		case AttributeType:
			if _, err := ParseExerciseType(a.AttributeValue.Value); err != nil {
				return err
			}
		case AttributeMechanicsType:
			if _, err := ParseMechanicsType(a.AttributeValue.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
