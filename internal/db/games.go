package db

import "gorm.io/gorm"

// CreateGameWithBoard persists a new session and its board snapshot in one
// transaction. The board's GameID is filled in from the created game.
func CreateGameWithBoard(conn *gorm.DB, game *Game, board *BoardState) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		board.GameID = game.ID
		return tx.Create(board).Error
	})
}

// GameByID loads a session without its associations.
func GameByID(conn *gorm.DB, id uint) (*Game, error) {
	var game Game
	if err := conn.First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// GameWithBoard loads a session and its board state.
func GameWithBoard(conn *gorm.DB, id uint) (*Game, error) {
	var game Game
	if err := conn.Preload("BoardState").First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// BoardByGameID loads the board snapshot for a session. Every session owns
// exactly one, created with it.
func BoardByGameID(conn *gorm.DB, gameID uint) (*BoardState, error) {
	var board BoardState
	if err := conn.Where("game_id = ?", gameID).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// SaveBoard writes back a mutated board snapshot.
func SaveBoard(conn *gorm.DB, board *BoardState) error {
	return conn.Save(board).Error
}

// CreateEvent appends a played action to a session's log.
func CreateEvent(conn *gorm.DB, event *GameEvent) error {
	return conn.Create(event).Error
}

// DeleteEvent removes one logged action scoped to its session. Returns false
// when no row matched.
func DeleteEvent(conn *gorm.DB, gameID, eventID uint) (bool, error) {
	result := conn.Where("game_id = ? AND id = ?", gameID, eventID).Delete(&GameEvent{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
