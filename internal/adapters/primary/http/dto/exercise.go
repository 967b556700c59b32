package dto

import (
	"time"

	"workout-builder-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// SelectExercisesRequest asks for exercises grouped by muscle.
type SelectExercisesRequest struct {
	Muscles   []string `json:"muscles" binding:"required,min=1,dive,required"`
	Equipment []string `json:"equipment" binding:"required,min=1,dive,required"`
	Limit     int      `json:"limit" binding:"omitempty,min=1"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type AttributeNameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AttributeValueResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type ExerciseAttributeResponse struct {
	ID             string                 `json:"id"`
	AttributeName  AttributeNameResponse  `json:"attribute_name"`
	AttributeValue AttributeValueResponse `json:"attribute_value"`
}

type ExerciseResponse struct {
	ID                string                      `json:"id"`
	Name              string                      `json:"name"`
	NameEn            string                      `json:"name_en"`
	Description       string                      `json:"description"`
	DescriptionEn     string                      `json:"description_en"`
	FullVideoURL      string                      `json:"full_video_url"`
	FullVideoImageURL string                      `json:"full_video_image_url"`
	Introduction      string                      `json:"introduction"`
	IntroductionEn    string                      `json:"introduction_en"`
	Slug              string                      `json:"slug"`
	SlugEn            string                      `json:"slug_en"`
	CreatedAt         string                      `json:"created_at"`
	UpdatedAt         string                      `json:"updated_at"`
	Attributes        []ExerciseAttributeResponse `json:"attributes"`
}

type MuscleSelectionResponse struct {
	Muscle    string             `json:"muscle"`
	Exercises []ExerciseResponse `json:"exercises"`
}

type SelectExercisesResponse struct {
	Items []MuscleSelectionResponse `json:"items"`
	Total int                       `json:"total"`
}

type ListAttributeValuesResponse struct {
	Items []AttributeValueResponse `json:"items"`
	Total int                      `json:"total"`
}

// ============================================================================
// Converters
// ============================================================================

func ToExerciseResponse(e *domain.Exercise) ExerciseResponse {
	attrs := make([]ExerciseAttributeResponse, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		attrs = append(attrs, ExerciseAttributeResponse{
			ID: a.ID.String(),
			AttributeName: AttributeNameResponse{
				ID:   a.AttributeName.ID.String(),
				Name: string(a.AttributeName.Name),
			},
			AttributeValue: ToAttributeValueResponse(&a.AttributeValue),
		})
	}

	return ExerciseResponse{
		ID:                e.ID.String(),
		Name:              e.Name,
		NameEn:            e.NameEn,
		Description:       e.Description,
		DescriptionEn:     e.DescriptionEn,
		FullVideoURL:      e.FullVideoURL,
		FullVideoImageURL: e.FullVideoImageURL,
		Introduction:      e.Introduction,
		IntroductionEn:    e.IntroductionEn,
		Slug:              e.Slug,
		SlugEn:            e.SlugEn,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         e.UpdatedAt.Format(time.RFC3339),
		Attributes:        attrs,
	}
}

func ToAttributeValueResponse(v *domain.AttributeValue) AttributeValueResponse {
	return AttributeValueResponse{ID: v.ID.String(), Value: v.Value}
}

func ToSelectExercisesResponse(groups []domain.MuscleSelection) SelectExercisesResponse {
	items := make([]MuscleSelectionResponse, 0, len(groups))
	for _, g := range groups {
		exercises := make([]ExerciseResponse, 0, len(g.Exercises))
		for _, e := range g.Exercises {
			exercises = append(exercises, ToExerciseResponse(e))
		}
		items = append(items, MuscleSelectionResponse{Muscle: string(g.Muscle), Exercises: exercises})
	}
	return SelectExercisesResponse{Items: items, Total: len(items)}
}

func ToListAttributeValuesResponse(values []*domain.AttributeValue) ListAttributeValuesResponse {
	items := make([]AttributeValueResponse, 0, len(values))
	for _, v := range values {
		items = append(items, ToAttributeValueResponse(v))
	}
	return ListAttributeValuesResponse{Items: items, Total: len(items)}
}
