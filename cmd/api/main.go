package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"starblog/internal/config"
	"starblog/internal/database"
	"starblog/internal/middleware"
	"starblog/internal/modules/favorite"
	"starblog/internal/modules/people"
	"starblog/internal/modules/planet"
	"starblog/internal/modules/user"
	"starblog/internal/modules/vehicle"
	"starblog/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	peopleRepo := repository.NewPeopleRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	peopleHandler := people.NewHandler(people.NewService(db, peopleRepo, favoriteRepo))
	planetHandler := planet.NewHandler(planet.NewService(db, planetRepo, favoriteRepo))
	vehicleHandler := vehicle.NewHandler(vehicle.NewService(db, vehicleRepo, favoriteRepo))
	userHandler := user.NewHandler(user.NewService(db, userRepo, favoriteRepo))
	favoriteHandler := favorite.NewHandler(favorite.NewService(
		db, userRepo, peopleRepo, planetRepo, vehicleRepo, favoriteRepo,
	))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	root := r.Group("")
	{
		peopleHandler.RegisterRoutes(root)
		planetHandler.RegisterRoutes(root)
		vehicleHandler.RegisterRoutes(root)
		userHandler.RegisterRoutes(root)
		favoriteHandler.RegisterRoutes(root)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Resource not found",
			"error":   "The requested resource does not exist",
		})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
