package handlers

import (
	"errors"
	"net/http"

	"workout-builder-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrExerciseNotFound),
		errors.Is(err, domain.ErrAttributeNameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrNoMuscles),
		errors.Is(err, domain.ErrNoEquipment),
		errors.Is(err, domain.ErrInvalidMuscle),
		errors.Is(err, domain.ErrInvalidEquipment),
		errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrInvalidAttributeName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Selection failures are reported without internals
	case errors.Is(err, domain.ErrFetchExercises):
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrFetchExercises.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
