package handlers

import (
	"workout-builder-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	selectionSvc *services.ExerciseSelectionService
	catalogSvc   *services.CatalogService
}

func New(selectionSvc *services.ExerciseSelectionService, catalogSvc *services.CatalogService) *Handler {
	return &Handler{
		selectionSvc: selectionSvc,
		catalogSvc:   catalogSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Workout builder
	r.POST("/exercises/selection", h.SelectExercises)

	// Catalog
	r.GET("/exercises/:id", h.GetExercise)
	r.GET("/muscles", h.ListMuscles)
	r.GET("/equipment", h.ListEquipment)
	r.GET("/attributes/:name/values", h.ListAttributeValues)
}
