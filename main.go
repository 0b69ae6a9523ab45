package main

import (
	"fmt"
	"log"

	"github.com/surukutlaManoj/Food-Delivery/configs"
	"github.com/surukutlaManoj/Food-Delivery/middlewares"
	"github.com/surukutlaManoj/Food-Delivery/pkg/logger"
	"github.com/surukutlaManoj/Food-Delivery/routes"
	"github.com/surukutlaManoj/Food-Delivery/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedRestaurants(); err != nil {
		log.Fatalf("seed restaurants failed: %v", err)
	}

	slogger := logger.New("food-delivery")
	hub := ws.NewOrderHub(slogger)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, slogger, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
