package server

import (
	"errors"
	"net/http"

	"radlands-tracker/internal/db"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type eventURI struct {
	ID      uint `uri:"id" binding:"required"`
	EventID uint `uri:"eventID" binding:"required"`
}

type createEventRequest struct {
	Player    int    `json:"player" binding:"required,oneof=1 2"`
	EventName string `json:"event_name" binding:"required"`
	Position  *int   `json:"position" binding:"required"`
	WaterCost int    `json:"water_cost" binding:"omitempty,gte=0"`
	Effect    string `json:"effect"`
}

var createEventMessages = bindMessages{
	"Player":    {"required": "player is required", "oneof": "player must be 1 or 2"},
	"EventName": {"required": "event_name is required"},
	"Position":  {"required": "position is required"},
	"WaterCost": {"gte": "water_cost must not be negative"},
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	var uri gameURI
	if !bindURI(c, &uri) {
		return
	}
	var req createEventRequest
	if !bindJSON(c, &req, createEventMessages, "invalid event request") {
		return
	}

	event := db.GameEvent{
		GameID:    uri.ID,
		Player:    req.Player,
		EventName: req.EventName,
		Position:  *req.Position,
		WaterCost: req.WaterCost,
		Effect:    req.Effect,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := db.GameByID(tx, uri.ID); err != nil {
			return err
		}
		return db.CreateEvent(tx, &event)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "game not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         event.ID,
		"event_name": event.EventName,
		"position":   event.Position,
	})
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	var uri eventURI
	if !bindURI(c, &uri) {
		return
	}
	deleted, err := db.DeleteEvent(s.db, uri.ID, uri.EventID)
	if err != nil {
		serverError(c, err)
		return
	}
	if !deleted {
		notFound(c, "event not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event removed"})
}
