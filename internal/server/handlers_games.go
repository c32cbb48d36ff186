package server

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"radlands-tracker/internal/db"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Catalog names of the cards every player starts with in hand, on top of the
// camp-determined draw. Only appended when present in the catalog.
var bonusCardNames = []string{"Raiders", "Water Silo"}

type gameURI struct {
	ID uint `uri:"id" binding:"required"`
}

type createGameRequest struct {
	Player1Name  string  `json:"player1_name"`
	Player2Name  string  `json:"player2_name"`
	StartPlayer  *int    `json:"start_player" binding:"omitempty,oneof=1 2"`
	Player1Camps []int64 `json:"player1_camps"`
	Player2Camps []int64 `json:"player2_camps"`
}

var createGameMessages = bindMessages{
	"StartPlayer": {"oneof": "start_player must be 1 or 2"},
}

func (s *Server) handleCreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": resolveBindError(err, createGameMessages, "invalid game request"),
		})
		return
	}
	if req.Player1Name == "" {
		req.Player1Name = "Player 1"
	}
	if req.Player2Name == "" {
		req.Player2Name = "Player 2"
	}
	if req.Player1Camps == nil {
		req.Player1Camps = []int64{}
	}
	if req.Player2Camps == nil {
		req.Player2Camps = []int64{}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	startPlayer := 1 + rng.Intn(2)
	if req.StartPlayer != nil {
		startPlayer = *req.StartPlayer
	}

	deckCards, err := db.DeckCards(s.db)
	if err != nil {
		serverError(c, err)
		return
	}
	eligible := cardIDs(deckCards)

	camps1, err := db.CardsByIDs(s.db, req.Player1Camps)
	if err != nil {
		serverError(c, err)
		return
	}
	camps2, err := db.CardsByIDs(s.db, req.Player2Camps)
	if err != nil {
		serverError(c, err)
		return
	}

	deck1, hand1 := dealHand(shuffledIDs(eligible, rng), initialDrawTotal(camps1))
	deck2, hand2 := dealHand(shuffledIDs(eligible, rng), initialDrawTotal(camps2))

	for _, name := range bonusCardNames {
		id, err := db.CardIDByName(s.db, name)
		if err != nil {
			serverError(c, err)
			return
		}
		if id != 0 {
			hand1 = append(hand1, id)
			hand2 = append(hand2, id)
		}
	}

	game := db.Game{
		Player1Name: req.Player1Name,
		Player2Name: req.Player2Name,
		Status:      "active",
	}
	board := db.BoardState{
		Player1Water:   s.cfg.StartingWater,
		Player2Water:   s.cfg.StartingWater,
		Player1Camps:   datatypes.NewJSONSlice(req.Player1Camps),
		Player2Camps:   datatypes.NewJSONSlice(req.Player2Camps),
		Player1Columns: emptyColumns(),
		Player2Columns: emptyColumns(),
		Player1Deck:    datatypes.NewJSONSlice(deck1),
		Player2Deck:    datatypes.NewJSONSlice(deck2),
		Player1Hand:    datatypes.NewJSONSlice(hand1),
		Player2Hand:    datatypes.NewJSONSlice(hand2),
		Player1Discard: datatypes.NewJSONSlice([]int64{}),
		Player2Discard: datatypes.NewJSONSlice([]int64{}),
		StartPlayer:    startPlayer,
		CurrentPlayer:  startPlayer,
		TurnNumber:     1,
	}
	if err := db.CreateGameWithBoard(s.db, &game, &board); err != nil {
		serverError(c, err)
		return
	}

	log.Printf("game created game_id=%d start_player=%d hand1=%d hand2=%d",
		game.ID, startPlayer, len(hand1), len(hand2))
	c.JSON(http.StatusCreated, gin.H{
		"id":                 game.ID,
		"player1_name":       game.Player1Name,
		"player2_name":       game.Player2Name,
		"status":             game.Status,
		"start_player":       startPlayer,
		"player1_hand_count": len(hand1),
		"player2_hand_count": len(hand2),
	})
}

func (s *Server) handleGetGame(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	game, err := db.GameWithBoard(s.db, uri.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "game not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	if game.BoardState == nil {
		serverError(c, errors.New("board state missing"))
		return
	}
	board := game.BoardState
	c.JSON(http.StatusOK, gin.H{
		"id":           game.ID,
		"player1_name": game.Player1Name,
		"player2_name": game.Player2Name,
		"status":       game.Status,
		"board_state": gin.H{
			"player1_water":   board.Player1Water,
			"player2_water":   board.Player2Water,
			"player1_camps":   board.Player1Camps,
			"player2_camps":   board.Player2Camps,
			"player1_columns": board.Player1Columns.Data(),
			"player2_columns": board.Player2Columns.Data(),
			"player1_deck":    board.Player1Deck,
			"player2_deck":    board.Player2Deck,
			"player1_hand":    board.Player1Hand,
			"player2_hand":    board.Player2Hand,
			"player1_discard": board.Player1Discard,
			"player2_discard": board.Player2Discard,
			"start_player":    board.StartPlayer,
			"current_player":  board.CurrentPlayer,
			"turn_number":     board.TurnNumber,
		},
	})
}

type waterRequest struct {
	Player int `json:"player"`
	Amount int `json:"amount"`
}

func (s *Server) handleUpdateWater(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	var req waterRequest
	if !bindJSON(c, &req, nil, "invalid water request") {
		return
	}

	var board *db.BoardState
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		board, err = db.BoardByGameID(tx, uri.ID)
		if err != nil {
			return err
		}
		// A selector outside {1, 2} is ignored, not rejected.
		switch req.Player {
		case 1:
			board.Player1Water = clampWater(board.Player1Water, req.Amount)
		case 2:
			board.Player2Water = clampWater(board.Player2Water, req.Amount)
		}
		return db.SaveBoard(tx, board)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "game not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"player1_water": board.Player1Water,
		"player2_water": board.Player2Water,
	})
}

func (s *Server) handleUpdateBoard(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	var req boardUpdateRequest
	if !bindJSON(c, &req, nil, "invalid board payload") {
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		board, err := db.BoardByGameID(tx, uri.ID)
		if err != nil {
			return err
		}
		if err := applyBoardPatch(board, req); err != nil {
			return err
		}
		return db.SaveBoard(tx, board)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "game not found")
		return
	}
	if errors.Is(err, errLaneCount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errLaneCount.Error()})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Board updated"})
}

func (s *Server) handleNextTurn(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}

	var board *db.BoardState
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		board, err = db.BoardByGameID(tx, uri.ID)
		if err != nil {
			return err
		}
		board.CurrentPlayer, board.TurnNumber = advanceTurn(board.CurrentPlayer, board.TurnNumber)
		board.Player1Water = s.cfg.StartingWater
		board.Player2Water = s.cfg.StartingWater
		return db.SaveBoard(tx, board)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "game not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"current_player": board.CurrentPlayer,
		"turn_number":    board.TurnNumber,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

func serverError(c *gin.Context, err error) {
	log.Printf("request failed path=%s request_id=%s err=%v",
		c.Request.URL.Path, c.GetString("request_id"), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
