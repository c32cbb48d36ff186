package db

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

// SeedResult reports what a catalog seed run did.
type SeedResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

// SeedCards upserts the fixed card definition table keyed on unique name:
// existing rows are overwritten field for field, missing rows are inserted.
// Safe to run repeatedly.
func SeedCards(conn *gorm.DB) (SeedResult, error) {
	defs := cardDefinitions()
	result := SeedResult{Total: len(defs)}

	err := conn.Transaction(func(tx *gorm.DB) error {
		for _, def := range defs {
			var existing Card
			err := tx.Where("name = ?", def.Name).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&def).Error; err != nil {
					return err
				}
				result.Added++
			case err != nil:
				return err
			default:
				def.ID = existing.ID
				def.CreatedAt = existing.CreatedAt
				if err := tx.Save(&def).Error; err != nil {
					return err
				}
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return result, nil
}

// SeedCardsIfEmpty seeds the catalog once at boot when no rows exist yet.
func SeedCardsIfEmpty(conn *gorm.DB) error {
	count, err := CountCards(conn)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	result, err := SeedCards(conn)
	if err != nil {
		return err
	}
	log.Printf("card catalog seeded added=%d total=%d", result.Added, result.Total)
	return nil
}
