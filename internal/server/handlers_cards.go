package server

import (
	"log"
	"net/http"

	"radlands-tracker/internal/db"

	"github.com/gin-gonic/gin"
)

const maxCardsPerPage = 100

type cardsQuery struct {
	Search  string `form:"search"`
	Type    string `form:"type"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

func (s *Server) handleListCards(c *gin.Context) {
	var query cardsQuery
	if !bindQuery(c, &query) {
		return
	}

	limit, offset := 0, 0
	if query.PerPage > 0 {
		limit = query.PerPage
		if limit > maxCardsPerPage {
			limit = maxCardsPerPage
		}
		if query.Page > 1 {
			offset = (query.Page - 1) * limit
		}
	}

	cards, err := db.SearchCards(s.db, query.Search, query.Type, limit, offset)
	if err != nil {
		serverError(c, err)
		return
	}

	projections := make([]gin.H, 0, len(cards))
	for _, card := range cards {
		projections = append(projections, cardProjection(card))
	}
	c.JSON(http.StatusOK, projections)
}

func cardProjection(card db.Card) gin.H {
	return gin.H{
		"id":            card.ID,
		"name":          card.Name,
		"type":          card.CardType,
		"water_cost":    card.WaterCost,
		"abilities":     card.Abilities,
		"traits":        card.Traits,
		"junk_effect":   card.JunkEffect,
		"event_effect":  card.EventEffect,
		"bomb_position": card.BombPosition,
		"initial_draw":  card.InitialDraw,
		"expansion":     card.Expansion,
	}
}

func (s *Server) handleSeedCards(c *gin.Context) {
	result, err := db.SeedCards(s.db)
	if err != nil {
		serverError(c, err)
		return
	}
	log.Printf("card catalog reseeded added=%d updated=%d total=%d",
		result.Added, result.Updated, result.Total)
	c.JSON(http.StatusCreated, result)
}
