package handlers

import (
	"net/http"

	"workout-builder-service/internal/adapters/primary/http/dto"
	"workout-builder-service/internal/adapters/primary/http/middleware"
	"workout-builder-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListMuscles(c *gin.Context) {
	values, err := h.catalogSvc.ListMuscles(c.Request.Context())
	if err != nil {
		middleware.Logger(c).WithError(err).Error("list muscles failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttributeValuesResponse(values))
}

func (h *Handler) ListEquipment(c *gin.Context) {
	h.listValues(c, domain.AttributeEquipment)
}

func (h *Handler) ListAttributeValues(c *gin.Context) {
	name, err := domain.ParseAttributeName(c.Param("name"))
	if err != nil {
		mapDomainError(c, err)
		return
	}
	h.listValues(c, name)
}

func (h *Handler) listValues(c *gin.Context, name domain.AttributeNameType) {
	values, err := h.catalogSvc.ListAttributeValues(c.Request.Context(), name)
	if err != nil {
		middleware.Logger(c).WithError(err).WithField("attribute", name).Error("list attribute values failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAttributeValuesResponse(values))
}
