package main

import (
	"log"

	"radlands-tracker/internal/config"
	"radlands-tracker/internal/db"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	result, err := db.SeedCards(conn)
	if err != nil {
		log.Fatalf("card seed failed: %v", err)
	}
	log.Printf("card catalog seeded added=%d updated=%d total=%d",
		result.Added, result.Updated, result.Total)
}
