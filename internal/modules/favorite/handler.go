package favorite

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starblog/internal/domain"
	"starblog/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/user/:id")
	{
		g.GET("/favorites", h.List)

		g.POST("/favorite/people/:targetId", h.AddPeople)
		g.POST("/favorite/planet/:targetId", h.AddPlanet)
		g.POST("/favorite/vehicle/:targetId", h.AddVehicle)

		g.DELETE("/favorite/people/:targetId", h.RemovePeople)
		g.DELETE("/favorite/planet/:targetId", h.RemovePlanet)
		g.DELETE("/favorite/vehicle/:targetId", h.RemoveVehicle)
	}
}

func ids(c *gin.Context) (userID, targetID int64, ok bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return 0, 0, false
	}
	targetID, err = strconv.ParseInt(c.Param("targetId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid target ID")
		return 0, 0, false
	}
	return userID, targetID, true
}

func (h *Handler) List(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	favs, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID))
			return
		}
		response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		return
	}
	c.JSON(http.StatusOK, toListResponse(userID, favs))
}

func (h *Handler) AddPeople(c *gin.Context) {
	userID, targetID, ok := ids(c)
	if !ok {
		return
	}

	fav, err := h.svc.AddPeople(c.Request.Context(), userID, targetID)
	if err != nil {
		var dup *DuplicateError
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID))
		case errors.Is(err, ErrTargetNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Person with ID %d not found", targetID))
		case errors.As(err, &dup):
			response.Error(c, http.StatusConflict,
				fmt.Sprintf("%s is already in user's favorites", dup.Name))
		case errors.Is(err, domain.ErrDuplicateKey):
			// Lost the race with a concurrent add; the unique index decided.
			response.ErrorWithDetail(c, http.StatusConflict,
				"This person is already in your favorites", err)
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.DataWithMessage(c, http.StatusCreated,
		fmt.Sprintf("%s added to favorites successfully", fav.People.Name), fav)
}

func (h *Handler) RemovePeople(c *gin.Context) {
	userID, targetID, ok := ids(c)
	if !ok {
		return
	}

	name, err := h.svc.RemovePeople(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID))
		case errors.Is(err, ErrFavoriteNotFound):
			response.Error(c, http.StatusNotFound,
				fmt.Sprintf("Person with ID %d is not in user's favorites", targetID))
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("%s removed from favorites successfully", name))
}

func (h *Handler) AddPlanet(c *gin.Context) {
	userID, targetID, ok := ids(c)
	if !ok {
		return
	}

	fav, err := h.svc.AddPlanet(c.Request.Context(), userID, targetID)
	if err != nil {
		var dup *DuplicateError
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID))
		case errors.Is(err, ErrTargetNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Planet with ID %d not found", targetID))
		case errors.As(err, &dup):
			response.Error(c, http.StatusConflict,
				fmt.Sprintf("Planet %s is already in user's favorites", dup.Name))
		case errors.Is(err, domain.ErrDuplicateKey):
			response.ErrorWithDetail(c, http.StatusConflict,
				"This planet is already in your favorites", err)
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.DataWithMessage(c, http.StatusCreated,
		fmt.Sprintf("Planet %s added to favorites successfully", fav.Planet.Name), fav)
}

func (h *Handler) RemovePlanet(c *gin.Context) {
	userID, targetID, ok := ids(c)
	if !ok {
		return
	}

	name, err := h.svc.RemovePlanet(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID))
		case errors.Is(err, ErrFavoriteNotFound):
			response.Error(c, http.StatusNotFound,
				fmt.Sprintf("Planet with ID %d is not in user's favorites", targetID))
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("%s removed from favorites successfully", name))
}

func (h *Handler) AddVehicle(c *gin.Context) {
	userID, targetID, ok := ids(c)
	if !ok {
		return
	}

	fav, err := h.svc.AddVehicle(c.Request.Context(), userID, targetID)
	if err != nil {
		var dup *DuplicateError
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID))
		case errors.Is(err, ErrTargetNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("Vehicle with ID %d not found", targetID))
		case errors.As(err, &dup):
			response.Error(c, http.StatusConflict,
				fmt.Sprintf("%s is already in user's favorites", dup.Name))
		case errors.Is(err, domain.ErrDuplicateKey):
			response.ErrorWithDetail(c, http.StatusConflict,
				"This vehicle is already in your favorites", err)
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.DataWithMessage(c, http.StatusCreated,
		fmt.Sprintf("%s added to favorites successfully", fav.Vehicle.Name), fav)
}

func (h *Handler) RemoveVehicle(c *gin.Context) {
	userID, targetID, ok := ids(c)
	if !ok {
		return
	}

	name, err := h.svc.RemoveVehicle(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID))
		case errors.Is(err, ErrFavoriteNotFound):
			response.Error(c, http.StatusNotFound,
				fmt.Sprintf("Vehicle with ID %d is not in user's favorites", targetID))
		default:
			response.ErrorWithDetail(c, http.StatusInternalServerError, "Database error occurred", err)
		}
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("%s removed from favorites successfully", name))
}
