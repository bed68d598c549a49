package people

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starblog/internal/database"
	"starblog/internal/domain"
	"starblog/internal/repository"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.AutoMigrate(domain.AllModels()...))

	svc := NewService(db, repository.NewPeopleRepository(db), repository.NewFavoriteRepository(db))
	return svc, db
}

func strPtr(s string) *string { return &s }

func createRequest() CreateRequest {
	return CreateRequest{
		Name:      strPtr("Darth Vader"),
		BirthYear: strPtr("41.9BBY"),
		EyeColor:  strPtr("yellow"),
		Gender:    strPtr("male"),
		HairColor: strPtr("none"),
		Height:    strPtr("202"),
		Mass:      strPtr("136"),
		SkinColor: strPtr("white"),
		Homeworld: strPtr("Tatooine"),
		URL:       strPtr("https://swapi.dev/api/people/4/"),
	}
}

func TestCreate_AllFields(t *testing.T) {
	svc, _ := setupService(t)

	person, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.NotZero(t, person.ID)
	assert.Equal(t, "Darth Vader", person.Name)
	assert.False(t, person.Created.IsZero())
	assert.Equal(t, "136", person.Mass)
}

func TestCreate_MissingFields(t *testing.T) {
	svc, db := setupService(t)

	req := createRequest()
	req.Mass = nil
	req.Homeworld = nil

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"mass", "homeworld"}, verr.Missing)

	var count int64
	require.NoError(t, db.Model(&domain.People{}).Count(&count).Error)
	assert.Zero(t, count, "validation failure must not create a row")
}

func TestUpdate_Partial(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	person, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	created := person.Created

	updated, err := svc.Update(ctx, person.ID, UpdateRequest{Mass: strPtr("140")})
	require.NoError(t, err)

	assert.Equal(t, "140", updated.Mass)
	assert.Equal(t, "Darth Vader", updated.Name, "absent fields stay untouched")
	assert.Equal(t, "41.9BBY", updated.BirthYear)
	assert.Equal(t, created.Unix(), updated.Created.Unix(), "created timestamp survives updates")
	require.NotNil(t, updated.Edited)
}

func TestUpdate_Missing(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Update(context.Background(), 9999, UpdateRequest{Mass: strPtr("140")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_CascadesFavorites(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	person, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	u := &domain.User{
		Email: "luke@jedi.com", Username: "luke_skywalker",
		Name: "Luke Skywalker", PasswordHash: "$2a$10$test", IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	require.NoError(t, db.Create(&domain.FavoritePeople{UserID: u.ID, PeopleID: person.ID}).Error)

	require.NoError(t, svc.Delete(ctx, person.ID))

	_, err = svc.Get(ctx, person.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.FavoritePeople{}).Where("people_id = ?", person.ID).Count(&count).Error)
	assert.Zero(t, count, "favorite links must not outlive the character")
}

func TestDelete_Missing(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
