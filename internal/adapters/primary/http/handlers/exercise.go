package handlers

import (
	"net/http"

	"workout-builder-service/internal/adapters/primary/http/dto"
	"workout-builder-service/internal/adapters/primary/http/middleware"
	"workout-builder-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) SelectExercises(c *gin.Context) {
	var req dto.SelectExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selection, err := domain.NewSelectionRequest(req.Muscles, req.Equipment, req.Limit)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	groups, err := h.selectionSvc.GetExercises(c.Request.Context(), selection)
	if err != nil {
		middleware.Logger(c).WithError(err).Error("select exercises failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSelectExercisesResponse(groups))
}

func (h *Handler) GetExercise(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exercise id"})
		return
	}

	exercise, err := h.catalogSvc.GetExercise(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExerciseResponse(exercise))
}
