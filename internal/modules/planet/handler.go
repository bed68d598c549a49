package planet

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"starblog/internal/domain"
	"starblog/internal/pkg/response"
	"starblog/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/planets")
	{
		g.GET("", h.GetAll)
		g.GET("/:id", h.GetOne)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) GetAll(c *gin.Context) {
	planets, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		return
	}
	response.List(c, http.StatusOK, planets, len(planets))
}

func (h *Handler) GetOne(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid planet ID")
		return
	}

	planet, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Planet with ID %d not found", id))
			return
		}
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		return
	}
	response.Data(c, http.StatusOK, planet)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if missing := validator.Missing(err); len(missing) > 0 {
			response.Error(c, http.StatusBadRequest,
				"Missing required fields: "+strings.Join(missing, ", "))
			return
		}
		response.Error(c, http.StatusBadRequest, "No JSON data provided")
		return
	}

	planet, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.Error(c, http.StatusBadRequest,
				"Missing required fields: "+strings.Join(vErr.Missing, ", "))
		case errors.Is(err, domain.ErrDuplicateKey):
			response.ErrorWithDetail(c, http.StatusConflict,
				"Data integrity error - possibly duplicate URL", err)
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.DataWithMessage(c, http.StatusCreated, "Planet created successfully", planet)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid planet ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "No JSON data provided")
		return
	}

	planet, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Planet with ID %d not found", id))
		case errors.Is(err, domain.ErrDuplicateKey):
			response.ErrorWithDetail(c, http.StatusConflict,
				"Data integrity error - possibly duplicate URL", err)
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.DataWithMessage(c, http.StatusOK, "Planet updated successfully", planet)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid planet ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Planet with ID %d not found", id))
			return
		}
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Planet with ID %d deleted successfully", id))
}
