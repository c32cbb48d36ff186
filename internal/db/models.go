package db

import (
	"time"

	"gorm.io/datatypes"
)

// Ability is one paid use printed on a card.
type Ability struct {
	Description string `json:"description"`
	WaterCost   int    `json:"water_cost"`
}

// Columns is the three-lane board layout for one player. Each lane holds
// catalog card ids in play order.
type Columns = datatypes.JSONType[[][]int64]

type Game struct {
	ID          uint      `gorm:"primaryKey"`
	Player1Name string    `gorm:"size:100;not null"`
	Player2Name string    `gorm:"size:100;not null"`
	Status      string    `gorm:"size:20;not null;default:active"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	BoardState  *BoardState
	Events      []GameEvent
}

type BoardState struct {
	ID     uint `gorm:"primaryKey"`
	GameID uint `gorm:"uniqueIndex;not null"`

	Player1Water int `gorm:"not null;default:3"`
	Player2Water int `gorm:"not null;default:3"`

	Player1Camps datatypes.JSONSlice[int64]
	Player2Camps datatypes.JSONSlice[int64]

	Player1Columns Columns
	Player2Columns Columns

	Player1Deck datatypes.JSONSlice[int64]
	Player2Deck datatypes.JSONSlice[int64]

	Player1Hand datatypes.JSONSlice[int64]
	Player2Hand datatypes.JSONSlice[int64]

	Player1Discard datatypes.JSONSlice[int64]
	Player2Discard datatypes.JSONSlice[int64]

	StartPlayer   int `gorm:"not null;default:1"`
	CurrentPlayer int `gorm:"not null;default:1"`
	TurnNumber    int `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GameEvent struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"index;not null"`
	Player    int       `gorm:"not null"`
	EventName string    `gorm:"size:100;not null"`
	Position  int       `gorm:"not null"`
	WaterCost int       `gorm:"not null;default:0"`
	Effect    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

type Card struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	CardType  string `gorm:"size:20;not null"`
	WaterCost int    `gorm:"not null;default:0"`

	Abilities datatypes.JSONSlice[Ability]
	Traits    datatypes.JSONSlice[string]

	JunkEffect   *string `gorm:"type:text"`
	EventEffect  *string `gorm:"type:text"`
	BombPosition *int
	InitialDraw  *int

	Expansion string `gorm:"size:50;not null;default:base"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
