package user

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

// RegisterRoutes keeps the original split: the collection under /users,
// single-user operations under /user/:id.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.GetAll)
	rg.POST("/users", h.Create)

	g := rg.Group("/user")
	{
		g.GET("/:id", h.GetOne)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) GetAll(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		return
	}
	response.List(c, http.StatusOK, users, len(users))
}

func (h *Handler) GetOne(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
			return
		}
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		return
	}
	response.Data(c, http.StatusOK, u)
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

	u, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.Error(c, http.StatusBadRequest,
				"Missing required fields: "+strings.Join(vErr.Missing, ", "))
		case errors.Is(err, domain.ErrDuplicateKey):
			response.ErrorWithDetail(c, http.StatusConflict,
				"Data integrity error - possibly duplicate email or username", err)
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.DataWithMessage(c, http.StatusCreated, "User created successfully", u)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "No JSON data provided")
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
		case errors.Is(err, domain.ErrDuplicateKey):
			response.ErrorWithDetail(c, http.StatusConflict,
				"Data integrity error - possibly duplicate email or username", err)
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.DataWithMessage(c, http.StatusOK, "User updated successfully", u)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
			return
		}
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("User with ID %d deleted successfully", id))
}
