package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"starblog/internal/database"
	"starblog/internal/domain"
)

// Each test gets its own named shared-cache in-memory database so the
// connection pool always sees the same schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.AutoMigrate(domain.AllModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()

	u := &domain.User{
		Email:        username + "@test.com",
		Username:     username,
		Name:         "Test " + username,
		PasswordHash: "$2a$10$test",
		IsActive:     true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPeople(t *testing.T, db *gorm.DB, name string) *domain.People {
	t.Helper()

	p := &domain.People{
		Name: name, BirthYear: "19BBY", EyeColor: "blue", Gender: "male",
		HairColor: "blond", Height: "172", Mass: "77", SkinColor: "fair",
		Homeworld: "Tatooine",
		URL:       "https://swapi.dev/api/people/" + name + "/",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedPlanet(t *testing.T, db *gorm.DB, name string) *domain.Planet {
	t.Helper()

	p := &domain.Planet{
		Name: name, Diameter: "10465", RotationPeriod: "23", OrbitalPeriod: "304",
		Gravity: "1 standard", Population: "200000", Climate: "arid",
		Terrain: "desert", SurfaceWater: "1",
		URL:     "https://swapi.dev/api/planets/" + name + "/",
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedVehicle(t *testing.T, db *gorm.DB, name string) *domain.Vehicle {
	t.Helper()

	v := &domain.Vehicle{
		Name: name, Model: name, VehicleClass: "wheeled",
		Manufacturer: "Corellia Mining Corporation", Length: "36.8",
		CostInCredits: "150000", Crew: "46", Passengers: "30",
		MaxAtmosSpeed: "30", CargoCapacity: "50000", Consumables: "2 months",
		URL:           "https://swapi.dev/api/vehicles/" + name + "/",
	}
	require.NoError(t, db.Create(v).Error)
	return v
}
