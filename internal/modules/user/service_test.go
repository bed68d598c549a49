package user

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

	svc := NewService(db, repository.NewUserRepository(db), repository.NewFavoriteRepository(db))
	return svc, db
}

func strPtr(s string) *string { return &s }

func createRequest() CreateRequest {
	return CreateRequest{
		Email:    strPtr("luke@jedi.com"),
		Username: strPtr("luke_skywalker"),
		Name:     strPtr("Luke Skywalker"),
		Password: strPtr("force123"),
	}
}

func TestCreate_HashesPassword(t *testing.T) {
	svc, _ := setupService(t)

	u, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.True(t, u.IsActive, "is_active defaults to true")

	// The stored credential is a bcrypt hash of the submitted password,
	// never the password itself.
	assert.NotEqual(t, "force123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("force123")))
}

func TestCreate_MissingFields(t *testing.T) {
	svc, db := setupService(t)

	req := createRequest()
	req.Username = nil
	req.Password = nil

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"username", "password"}, verr.Missing)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count, "validation failure must not create a row")
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.Username = strPtr("luke_two")
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestUpdate_Partial(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	originalHash := u.PasswordHash

	updated, err := svc.Update(ctx, u.ID, UpdateRequest{Name: strPtr("Luke S.")})
	require.NoError(t, err)
	assert.Equal(t, "Luke S.", updated.Name)
	assert.Equal(t, "luke@jedi.com", updated.Email, "absent fields stay untouched")
	assert.Equal(t, originalHash, updated.PasswordHash, "no password in body, no re-hash")
}

func TestUpdate_RehashesPassword(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	originalHash := u.PasswordHash

	updated, err := svc.Update(ctx, u.ID, UpdateRequest{Password: strPtr("newforce456")})
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newforce456")))
}

func TestUpdate_Missing(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Update(context.Background(), 9999, UpdateRequest{Name: strPtr("Nobody")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_CascadesFavorites(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	planet := &domain.Planet{Name: "Tatooine", URL: "https://swapi.dev/api/planets/1/"}
	require.NoError(t, db.Create(planet).Error)
	person := &domain.People{Name: "Darth Vader", URL: "https://swapi.dev/api/people/4/"}
	require.NoError(t, db.Create(person).Error)
	require.NoError(t, db.Create(&domain.FavoritePlanet{UserID: u.ID, PlanetID: planet.ID}).Error)
	require.NoError(t, db.Create(&domain.FavoritePeople{UserID: u.ID, PeopleID: person.ID}).Error)

	require.NoError(t, svc.Delete(ctx, u.ID))

	_, err = svc.Get(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.FavoritePlanet{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&domain.FavoritePeople{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDelete_Missing(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
