package main

import (
	"log"

	"radlands-tracker/internal/config"
	"radlands-tracker/internal/db"
	"radlands-tracker/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Configure(conn, cfg); err != nil {
		log.Fatalf("database pool configuration failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	if err := db.SeedCardsIfEmpty(conn); err != nil {
		log.Fatalf("card catalog seed failed: %v", err)
	}

	srv := server.New(conn, cfg)
	log.Printf("radlands tracker listening on :%s", cfg.Port)
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
