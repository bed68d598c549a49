package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starblog/internal/domain"
)

func TestUserRepository_GetByID_EmptyFavoritesAreArrays(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	u := seedUser(t, db, "luke")

	got, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FavoritePeople, "empty collections load as arrays, not nil")
	require.NotNil(t, got.FavoritePlanets)
	require.NotNil(t, got.FavoriteVehicles)
	assert.Empty(t, got.FavoritePeople)
}

func TestUserRepository_List_PreloadsFavoriteTargets(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	u := seedUser(t, db, "luke")
	planet := seedPlanet(t, db, "Tatooine")
	require.NoError(t, db.Create(&domain.FavoritePlanet{UserID: u.ID, PlanetID: planet.ID}).Error)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Len(t, users[0].FavoritePlanets, 1)
	require.NotNil(t, users[0].FavoritePlanets[0].Planet)
	assert.Equal(t, "Tatooine", users[0].FavoritePlanets[0].Planet.Name)
	assert.NotNil(t, users[0].FavoritePeople)
	assert.NotNil(t, users[0].FavoriteVehicles)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	seedUser(t, db, "luke")

	dup := &domain.User{
		Email:        "other@test.com",
		Username:     "luke",
		Name:         "Other Luke",
		PasswordHash: "$2a$10$test",
		IsActive:     true,
	}
	err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}
