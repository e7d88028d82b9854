package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexnogueira4/side-take-home/internal/helper"
	"github.com/alexnogueira4/side-take-home/internal/middleware"
	"github.com/alexnogueira4/side-take-home/internal/response"
	"github.com/alexnogueira4/side-take-home/internal/service"
	"github.com/alexnogueira4/side-take-home/internal/validation"
)

type PropertyHandler struct {
	service service.PropertyService
}

func NewPropertyHandler(svc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: svc}
}

// FindAll handles GET /properties.
func (h *PropertyHandler) FindAll(c *gin.Context) {
	values, err := helper.ValidatedFromContext(c, middleware.QueryKey)
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, err.Error())
		return
	}

	page, err := h.service.FindAll(*validation.BindListQuery(values))
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetByID handles GET /properties/:id.
func (h *PropertyHandler) GetByID(c *gin.Context) {
	values, err := helper.ValidatedFromContext(c, middleware.ParamsKey)
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, err.Error())
		return
	}

	property, err := h.service.GetByID(validation.BindPropertyID(values))
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, "Failed to fetch property")
		return
	}
	if property == nil {
		response.ApiError(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, property)
}

// Create handles POST /properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	values, err := helper.ValidatedFromContext(c, middleware.BodyKey)
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, err.Error())
		return
	}

	message, err := h.service.Create(*validation.BindPropertyPayload(values))
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, "Failed to create property")
		return
	}

	c.JSON(http.StatusOK, message)
}

// Update handles PUT /properties/:id.
func (h *PropertyHandler) Update(c *gin.Context) {
	params, err := helper.ValidatedFromContext(c, middleware.ParamsKey)
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, err.Error())
		return
	}
	body, err := helper.ValidatedFromContext(c, middleware.BodyKey)
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, err.Error())
		return
	}

	message, err := h.service.Update(*validation.BindPropertyPayload(body), validation.BindPropertyID(params))
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, "Failed to update property")
		return
	}
	if message == nil {
		response.ApiError(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, message)
}

// Delete handles DELETE /properties/:id.
func (h *PropertyHandler) Delete(c *gin.Context) {
	values, err := helper.ValidatedFromContext(c, middleware.ParamsKey)
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, err.Error())
		return
	}

	message, err := h.service.Delete(validation.BindPropertyID(values))
	if err != nil {
		response.ApiError(c, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	if message == nil {
		response.ApiError(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, message)
}
