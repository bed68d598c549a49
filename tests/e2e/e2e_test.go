package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starblog/internal/database"
	"starblog/internal/domain"
	"starblog/internal/middleware"
	"starblog/internal/modules/favorite"
	"starblog/internal/modules/people"
	"starblog/internal/modules/planet"
	"starblog/internal/modules/user"
	"starblog/internal/modules/vehicle"
	"starblog/internal/repository"
)

// newServer wires the full stack against a test database, the same way
// cmd/api does.
func newServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.AutoMigrate(domain.AllModels()...))

	userRepo := repository.NewUserRepository(db)
	peopleRepo := repository.NewPeopleRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(""))

	root := r.Group("")
	people.NewHandler(people.NewService(db, peopleRepo, favoriteRepo)).RegisterRoutes(root)
	planet.NewHandler(planet.NewService(db, planetRepo, favoriteRepo)).RegisterRoutes(root)
	vehicle.NewHandler(vehicle.NewService(db, vehicleRepo, favoriteRepo)).RegisterRoutes(root)
	user.NewHandler(user.NewService(db, userRepo, favoriteRepo)).RegisterRoutes(root)
	favorite.NewHandler(favorite.NewService(
		db, userRepo, peopleRepo, planetRepo, vehicleRepo, favoriteRepo,
	)).RegisterRoutes(root)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Resource not found",
			"error":   "The requested resource does not exist",
		})
	})

	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func seedUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	u := &domain.User{
		Email: "luke@jedi.com", Username: "luke_skywalker",
		Name: "Luke Skywalker", PasswordHash: "$2a$10$test", IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPlanet(t *testing.T, db *gorm.DB) *domain.Planet {
	t.Helper()

	p := &domain.Planet{
		Name: "Tatooine", Diameter: "10465", RotationPeriod: "23",
		OrbitalPeriod: "304", Gravity: "1 standard", Population: "200000",
		Climate: "arid", Terrain: "desert", SurfaceWater: "1",
		URL: "https://swapi.dev/api/planets/1/",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestFavoritePlanetLifecycle(t *testing.T) {
	r, db := newServer(t)
	u := seedUser(t, db)
	p := seedPlanet(t, db)

	base := fmt.Sprintf("/user/%d/favorite/planet/%d", u.ID, p.ID)

	// Add: 201 with the nested planet in the payload.
	w, body := do(t, r, http.MethodPost, base, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Planet Tatooine added to favorites successfully", body["message"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	nested, ok := data["planet"].(map[string]interface{})
	require.True(t, ok, "favorite payload carries the nested planet")
	assert.Equal(t, "Tatooine", nested["name"])

	// Repeating the same add is a conflict, not a second row.
	w, body = do(t, r, http.MethodPost, base, nil)
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Planet Tatooine is already in user's favorites", body["message"])

	var count int64
	require.NoError(t, db.Model(&domain.FavoritePlanet{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The listing shows exactly one planet favorite.
	w, body = do(t, r, http.MethodGet, fmt.Sprintf("/user/%d/favorites", u.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	totals, ok := body["totals"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, totals["planets"])
	assert.EqualValues(t, 0, totals["people"])

	// Remove: 200 naming the planet.
	w, body = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Tatooine removed from favorites successfully", body["message"])

	// Repeating the delete: the link is gone.
	w, body = do(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, fmt.Sprintf("Planet with ID %d is not in user's favorites", p.ID), body["message"])
}

func TestFavorite_NotFoundTaxonomy(t *testing.T) {
	r, db := newServer(t)
	u := seedUser(t, db)
	p := seedPlanet(t, db)

	// Unknown user beats unknown target.
	w, body := do(t, r, http.MethodPost, fmt.Sprintf("/user/9999/favorite/planet/%d", p.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User with ID 9999 not found", body["message"])

	w, body = do(t, r, http.MethodPost, fmt.Sprintf("/user/%d/favorite/planet/9999", u.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Planet with ID 9999 not found", body["message"])

	w, body = do(t, r, http.MethodGet, "/user/9999/favorites", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User with ID 9999 not found", body["message"])
}

func TestCreatePeople_MissingFields(t *testing.T) {
	r, db := newServer(t)

	w, body := do(t, r, http.MethodPost, "/people", map[string]interface{}{
		"name":       "Darth Vader",
		"birth_year": "41.9BBY",
		"eye_color":  "yellow",
		"gender":     "male",
		"hair_color": "none",
		"height":     "202",
		"skin_color": "white",
		"homeworld":  "Tatooine",
		"url":        "https://swapi.dev/api/people/4/",
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields: mass", body["message"])

	// No row was created.
	var count int64
	require.NoError(t, db.Model(&domain.People{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPeopleCRUD(t *testing.T) {
	r, _ := newServer(t)

	w, body := do(t, r, http.MethodPost, "/people", map[string]interface{}{
		"name": "Darth Vader", "birth_year": "41.9BBY", "eye_color": "yellow",
		"gender": "male", "hair_color": "none", "height": "202", "mass": "136",
		"skin_color": "white", "homeworld": "Tatooine",
		"url": "https://swapi.dev/api/people/4/",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Person created successfully", body["message"])
	data := body["data"].(map[string]interface{})
	id := int64(data["id"].(float64))

	w, body = do(t, r, http.MethodGet, fmt.Sprintf("/people/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Darth Vader", body["data"].(map[string]interface{})["name"])

	// Partial update touches only the submitted field.
	w, body = do(t, r, http.MethodPut, fmt.Sprintf("/people/%d", id), map[string]interface{}{
		"mass": "140",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "140", data["mass"])
	assert.Equal(t, "Darth Vader", data["name"])

	w, body = do(t, r, http.MethodDelete, fmt.Sprintf("/people/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprintf("Person with ID %d deleted successfully", id), body["message"])

	w, body = do(t, r, http.MethodGet, fmt.Sprintf("/people/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, fmt.Sprintf("Person with ID %d not found", id), body["message"])
}

func TestUsersList_EmbedsFavorites(t *testing.T) {
	r, db := newServer(t)
	u := seedUser(t, db)
	p := seedPlanet(t, db)
	require.NoError(t, db.Create(&domain.FavoritePlanet{UserID: u.ID, PlanetID: p.ID}).Error)

	w, body := do(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	users := body["data"].([]interface{})
	require.Len(t, users, 1)
	first := users[0].(map[string]interface{})
	assert.Nil(t, first["password_hash"], "credential never serializes")
	favs, ok := first["favorite_planets"].([]interface{})
	require.True(t, ok, "user payload embeds favorite planets")
	require.Len(t, favs, 1)

	// The people list serializes under its wire name, and empty
	// collections still render as arrays.
	chars, ok := first["favorite_characters"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, chars)
	vehicles, ok := first["favorite_vehicles"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, vehicles)
}

func TestGetUser(t *testing.T) {
	r, db := newServer(t)
	u := seedUser(t, db)

	w, body := do(t, r, http.MethodGet, fmt.Sprintf("/user/%d", u.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "luke_skywalker", data["username"])

	_, hasPassword := data["password"]
	assert.False(t, hasPassword, "credential never serializes")
	_, hasHash := data["password_hash"]
	assert.False(t, hasHash)

	chars, ok := data["favorite_characters"].([]interface{})
	require.True(t, ok, "empty collections still serialize as arrays")
	assert.Empty(t, chars)
}

func TestUpdateUser_NoBody(t *testing.T) {
	r, db := newServer(t)
	u := seedUser(t, db)

	w, body := do(t, r, http.MethodPut, fmt.Sprintf("/user/%d", u.ID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No JSON data provided", body["message"])
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newServer(t)

	w, body := do(t, r, http.MethodGet, "/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Resource not found", body["message"])
	assert.Equal(t, "The requested resource does not exist", body["error"])
}
