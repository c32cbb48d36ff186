package db

import (
	"errors"

	"gorm.io/gorm"
)

const (
	CardTypePerson = "person"
	CardTypeEvent  = "event"
	CardTypeCamp   = "camp"
)

// SearchCards filters the catalog by an optional case-insensitive substring
// match on name or ability text and an optional exact card type. limit <= 0
// means no windowing.
func SearchCards(conn *gorm.DB, search, cardType string, limit, offset int) ([]Card, error) {
	query := conn.Model(&Card{}).Order("id")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR abilities::text ILIKE ?", pattern, pattern)
	}
	if cardType != "" {
		query = query.Where("card_type = ?", cardType)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	var cards []Card
	if err := query.Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// DeckCards returns every catalog card that gets shuffled into a draw deck,
// meaning people and events. Camps are placed directly at setup.
func DeckCards(conn *gorm.DB) ([]Card, error) {
	var cards []Card
	err := conn.Where("card_type IN ?", []string{CardTypePerson, CardTypeEvent}).
		Order("id").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// CardsByIDs loads the given catalog rows; missing ids are skipped.
func CardsByIDs(conn *gorm.DB, ids []int64) ([]Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cards []Card
	if err := conn.Where("id IN ?", ids).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// CardIDByName resolves a catalog id by unique name, returning (0, nil) when
// no card has that name.
func CardIDByName(conn *gorm.DB, name string) (int64, error) {
	var card Card
	err := conn.Where("name = ?", name).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int64(card.ID), nil
}

// CountCards reports how many catalog rows exist.
func CountCards(conn *gorm.DB) (int64, error) {
	var count int64
	if err := conn.Model(&Card{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
