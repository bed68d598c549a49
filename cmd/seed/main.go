package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"starblog/internal/config"
	"starblog/internal/database"
	"starblog/internal/domain"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(domain.AllModels()...); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data, children before parents.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorite_people")
	db.Exec("DELETE FROM favorite_planets")
	db.Exec("DELETE FROM favorite_vehicles")
	db.Exec("DELETE FROM people")
	db.Exec("DELETE FROM planets")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	users := []domain.User{
		{Email: "luke@jedi.com", Username: "luke_skywalker", Name: "Luke Skywalker"},
		{Email: "leia@rebellion.org", Username: "leia_organa", Name: "Leia Organa"},
		{Email: "han@falcon.net", Username: "han_solo", Name: "Han Solo"},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte("force123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("bcrypt failed:", err)
		}
		users[i].PasswordHash = string(hash)
		users[i].IsActive = true
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	log.Println("Creating people...")
	people := []domain.People{
		{
			Name: "Darth Vader", BirthYear: "41.9BBY", EyeColor: "yellow",
			Gender: "male", HairColor: "none", Height: "202", Mass: "136",
			SkinColor: "white", Homeworld: "Tatooine",
			URL: "https://swapi.dev/api/people/4/",
		},
		{
			Name: "Obi-Wan Kenobi", BirthYear: "57BBY", EyeColor: "blue-gray",
			Gender: "male", HairColor: "auburn, white", Height: "182", Mass: "77",
			SkinColor: "fair", Homeworld: "Stewjon",
			URL: "https://swapi.dev/api/people/10/",
		},
	}
	for i := range people {
		if err := db.Create(&people[i]).Error; err != nil {
			log.Fatal("seed people failed:", err)
		}
	}

	log.Println("Creating planets...")
	planets := []domain.Planet{
		{
			Name: "Tatooine", Diameter: "10465", RotationPeriod: "23",
			OrbitalPeriod: "304", Gravity: "1 standard", Population: "200000",
			Climate: "arid", Terrain: "desert", SurfaceWater: "1",
			URL: "https://swapi.dev/api/planets/1/",
		},
		{
			Name: "Alderaan", Diameter: "12500", RotationPeriod: "24",
			OrbitalPeriod: "364", Gravity: "1 standard", Population: "2000000000",
			Climate: "temperate", Terrain: "grasslands, mountains", SurfaceWater: "40",
			URL: "https://swapi.dev/api/planets/2/",
		},
	}
	for i := range planets {
		if err := db.Create(&planets[i]).Error; err != nil {
			log.Fatal("seed planets failed:", err)
		}
	}

	log.Println("Creating vehicles...")
	vehicles := []domain.Vehicle{
		{
			Name: "Sand Crawler", Model: "Digger Crawler", VehicleClass: "wheeled",
			Manufacturer: "Corellia Mining Corporation", Length: "36.8",
			CostInCredits: "150000", Crew: "46", Passengers: "30",
			MaxAtmosSpeed: "30", CargoCapacity: "50000", Consumables: "2 months",
			URL: "https://swapi.dev/api/vehicles/4/",
		},
		{
			Name: "X-34 landspeeder", Model: "X-34 landspeeder", VehicleClass: "repulsorcraft",
			Manufacturer: "SoroSuub Corporation", Length: "3.4",
			CostInCredits: "10550", Crew: "1", Passengers: "1",
			MaxAtmosSpeed: "250", CargoCapacity: "5", Consumables: "unknown",
			URL: "https://swapi.dev/api/vehicles/7/",
		},
	}
	for i := range vehicles {
		if err := db.Create(&vehicles[i]).Error; err != nil {
			log.Fatal("seed vehicles failed:", err)
		}
	}

	log.Println("Creating favorites...")
	favorites := []interface{}{
		&domain.FavoritePeople{UserID: users[0].ID, PeopleID: people[0].ID},
		&domain.FavoritePlanet{UserID: users[0].ID, PlanetID: planets[0].ID},
		&domain.FavoritePlanet{UserID: users[1].ID, PlanetID: planets[1].ID},
		&domain.FavoriteVehicle{UserID: users[2].ID, VehicleID: vehicles[0].ID},
	}
	for _, f := range favorites {
		if err := db.Create(f).Error; err != nil {
			log.Fatal("seed favorites failed:", err)
		}
	}

	log.Println("Seed complete")
}
