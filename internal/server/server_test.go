package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"radlands-tracker/internal/config"
	"radlands-tracker/internal/db"

	"github.com/gin-gonic/gin"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := New(nil, config.Default())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	resp := doRequest(t, ts, http.MethodGet, "/api/health", nil)
	wantStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	if body["status"] != "healthy" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestCreateGameDefaults(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)

	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{})
	wantStatus(t, resp, http.StatusCreated)
	body := decodeBody(t, resp)

	if body["player1_name"] != "Player 1" || body["player2_name"] != "Player 2" {
		t.Fatalf("expected default names, got %v", body)
	}
	if body["status"] != "active" {
		t.Fatalf("expected active status, got %v", body["status"])
	}
	start := asInt(t, body["start_player"])
	if start != 1 && start != 2 {
		t.Fatalf("start_player must resolve to 1 or 2, got %d", start)
	}
	// No camps chosen means no initial draw.
	if asInt(t, body["player1_hand_count"]) != 0 || asInt(t, body["player2_hand_count"]) != 0 {
		t.Fatalf("expected empty hands, got %v", body)
	}
}

func TestCreateGameInvalidStartPlayer(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)

	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"start_player": 3,
	})
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestCreateAndGetGame(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)

	// initial_draw 2 for player 1, 1 for player 2.
	camp1 := cardID(t, conn, "Base Camp")
	camp2 := cardID(t, conn, "Sniper Tower")

	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"player1_name":  "Ada",
		"player2_name":  "Grace",
		"start_player":  1,
		"player1_camps": []int64{camp1},
		"player2_camps": []int64{camp2},
	})
	wantStatus(t, resp, http.StatusCreated)
	created := decodeBody(t, resp)
	if asInt(t, created["player1_hand_count"]) != 2 {
		t.Fatalf("expected hand of 2, got %v", created["player1_hand_count"])
	}
	if asInt(t, created["player2_hand_count"]) != 1 {
		t.Fatalf("expected hand of 1, got %v", created["player2_hand_count"])
	}
	gameID := asInt(t, created["id"])

	resp = doRequest(t, ts, http.MethodGet, fmt.Sprintf("/api/games/%d", gameID), nil)
	wantStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	if body["player1_name"] != "Ada" || body["player2_name"] != "Grace" {
		t.Fatalf("unexpected names: %v", body)
	}

	board, ok := body["board_state"].(map[string]any)
	if !ok {
		t.Fatalf("missing board_state: %v", body)
	}
	if asInt(t, board["player1_water"]) != 3 || asInt(t, board["player2_water"]) != 3 {
		t.Fatalf("expected both water pools at 3, got %v", board)
	}
	if asInt(t, board["current_player"]) != 1 || asInt(t, board["turn_number"]) != 1 {
		t.Fatalf("unexpected turn state: %v", board)
	}
	for _, key := range []string{"player1_columns", "player2_columns"} {
		lanes, ok := board[key].([]any)
		if !ok || len(lanes) != 3 {
			t.Fatalf("%s must have exactly 3 lanes, got %v", key, board[key])
		}
		for _, lane := range lanes {
			if cards, ok := lane.([]any); !ok || len(cards) != 0 {
				t.Fatalf("%s lanes must start empty, got %v", key, lane)
			}
		}
	}

	// Hand plus deck must be a permutation of every person and event card.
	eligibleCards, err := db.DeckCards(conn)
	if err != nil {
		t.Fatalf("failed to load eligible cards: %v", err)
	}
	eligible := cardIDs(eligibleCards)
	for _, side := range []struct {
		hand, deck string
		drawn      int
	}{
		{"player1_hand", "player1_deck", 2},
		{"player2_hand", "player2_deck", 1},
	} {
		hand := idList(t, board[side.hand])
		deck := idList(t, board[side.deck])
		if len(hand) != side.drawn {
			t.Fatalf("%s expected %d cards, got %d", side.hand, side.drawn, len(hand))
		}
		if len(deck) != len(eligible)-side.drawn {
			t.Fatalf("%s expected %d cards, got %d", side.deck, len(eligible)-side.drawn, len(deck))
		}
		union := append(append([]int64{}, hand...), deck...)
		sort.Slice(union, func(i, j int) bool { return union[i] < union[j] })
		sorted := append([]int64{}, eligible...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		for i := range sorted {
			if union[i] != sorted[i] {
				t.Fatalf("%s+%s is not a permutation of the eligible cards", side.hand, side.deck)
			}
		}
	}
}

func TestGetGameNotFound(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := doRequest(t, ts, http.MethodGet, "/api/games/9999", nil)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestWaterAdjustment(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)
	gameID := createTestGame(t, ts)

	resp := doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/water", gameID), map[string]any{
		"player": 1, "amount": 2,
	})
	wantStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	if asInt(t, body["player1_water"]) != 5 || asInt(t, body["player2_water"]) != 3 {
		t.Fatalf("unexpected water after +2: %v", body)
	}

	// Any overshoot below zero clamps to exactly zero.
	resp = doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/water", gameID), map[string]any{
		"player": 1, "amount": -100,
	})
	wantStatus(t, resp, http.StatusOK)
	body = decodeBody(t, resp)
	if asInt(t, body["player1_water"]) != 0 {
		t.Fatalf("expected clamped water 0, got %v", body["player1_water"])
	}

	// Selectors outside {1, 2} are ignored.
	resp = doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/water", gameID), map[string]any{
		"player": 5, "amount": 4,
	})
	wantStatus(t, resp, http.StatusOK)
	body = decodeBody(t, resp)
	if asInt(t, body["player1_water"]) != 0 || asInt(t, body["player2_water"]) != 3 {
		t.Fatalf("invalid selector must not change water: %v", body)
	}
}

func TestWaterUnknownGame(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := doRequest(t, ts, http.MethodPost, "/api/games/4242/water", map[string]any{
		"player": 1, "amount": 1,
	})
	wantStatus(t, resp, http.StatusNotFound)
}

func TestTurnAdvancement(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)
	gameID := createTestGameWithStart(t, ts, 1)

	// Spend some water so the reset is observable.
	doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/water", gameID), map[string]any{
		"player": 1, "amount": -2,
	})

	resp := doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/turn", gameID), nil)
	wantStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	if asInt(t, body["current_player"]) != 2 || asInt(t, body["turn_number"]) != 1 {
		t.Fatalf("after first advance: %v", body)
	}

	resp = doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/turn", gameID), nil)
	wantStatus(t, resp, http.StatusOK)
	body = decodeBody(t, resp)
	if asInt(t, body["current_player"]) != 1 || asInt(t, body["turn_number"]) != 2 {
		t.Fatalf("after second advance: %v", body)
	}

	resp = doRequest(t, ts, http.MethodGet, fmt.Sprintf("/api/games/%d", gameID), nil)
	board := decodeBody(t, resp)["board_state"].(map[string]any)
	if asInt(t, board["player1_water"]) != 3 || asInt(t, board["player2_water"]) != 3 {
		t.Fatalf("water must reset every turn, got %v", board)
	}
}

func TestEventLifecycle(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)
	gameID := createTestGame(t, ts)

	resp := doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/events", gameID), map[string]any{
		"player":     1,
		"event_name": "Raid",
		"position":   0,
		"water_cost": 2,
		"effect":     "Damage any camp",
	})
	wantStatus(t, resp, http.StatusCreated)
	body := decodeBody(t, resp)
	if body["event_name"] != "Raid" || asInt(t, body["position"]) != 0 {
		t.Fatalf("unexpected event response: %v", body)
	}
	eventID := asInt(t, body["id"])

	resp = doRequest(t, ts, http.MethodDelete, fmt.Sprintf("/api/games/%d/events/%d", gameID, eventID), nil)
	wantStatus(t, resp, http.StatusOK)

	resp = doRequest(t, ts, http.MethodDelete, fmt.Sprintf("/api/games/%d/events/%d", gameID, eventID), nil)
	wantStatus(t, resp, http.StatusNotFound)
}

func TestCreateEventMissingFields(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)
	gameID := createTestGame(t, ts)

	resp := doRequest(t, ts, http.MethodPost, fmt.Sprintf("/api/games/%d/events", gameID), map[string]any{
		"event_name": "Raid",
	})
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestCreateEventUnknownGame(t *testing.T) {
	ts, _ := newTestServer(t)
	resp := doRequest(t, ts, http.MethodPost, "/api/games/777/events", map[string]any{
		"player": 1, "event_name": "Raid", "position": 1,
	})
	wantStatus(t, resp, http.StatusNotFound)
}

func TestBoardReplacement(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)
	gameID := createTestGame(t, ts)

	resp := doRequest(t, ts, http.MethodPut, fmt.Sprintf("/api/games/%d/board", gameID), map[string]any{
		"player1_columns": [][]int64{{1}, {2, 3}, {}},
		"player1_camps":   []int64{9},
	})
	wantStatus(t, resp, http.StatusOK)

	resp = doRequest(t, ts, http.MethodGet, fmt.Sprintf("/api/games/%d", gameID), nil)
	board := decodeBody(t, resp)["board_state"].(map[string]any)

	lanes := board["player1_columns"].([]any)
	if len(lanes) != 3 || len(lanes[1].([]any)) != 2 {
		t.Fatalf("player1_columns not replaced: %v", board["player1_columns"])
	}
	camps := idList(t, board["player1_camps"])
	if len(camps) != 1 || camps[0] != 9 {
		t.Fatalf("player1_camps not replaced: %v", camps)
	}
	// Fields absent from the payload stay untouched.
	p2lanes := board["player2_columns"].([]any)
	for _, lane := range p2lanes {
		if len(lane.([]any)) != 0 {
			t.Fatalf("player2_columns should be untouched: %v", p2lanes)
		}
	}
}

func TestBoardReplacementBadLaneCount(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)
	gameID := createTestGame(t, ts)

	resp := doRequest(t, ts, http.MethodPut, fmt.Sprintf("/api/games/%d/board", gameID), map[string]any{
		"player2_columns": [][]int64{{1}, {2}},
	})
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestListCards(t *testing.T) {
	ts, conn := newTestServer(t)
	seedCatalog(t, conn)

	resp := doRequest(t, ts, http.MethodGet, "/api/cards", nil)
	wantStatus(t, resp, http.StatusOK)
	cards := decodeList(t, resp)
	if len(cards) != 40 {
		t.Fatalf("expected 40 cards, got %d", len(cards))
	}

	resp = doRequest(t, ts, http.MethodGet, "/api/cards?type=camp", nil)
	cards = decodeList(t, resp)
	if len(cards) != 10 {
		t.Fatalf("expected 10 camps, got %d", len(cards))
	}
	for _, card := range cards {
		if card["type"] != "camp" {
			t.Fatalf("type filter leaked a %v", card["type"])
		}
	}

	// Case-insensitive match against name or ability text.
	resp = doRequest(t, ts, http.MethodGet, "/api/cards?search=restore", nil)
	cards = decodeList(t, resp)
	names := map[string]bool{}
	for _, card := range cards {
		names[card["name"].(string)] = true
	}
	if !names["Mechanic"] || !names["Medical Bay"] {
		t.Fatalf("search missed ability text matches: %v", names)
	}

	resp = doRequest(t, ts, http.MethodGet, "/api/cards?per_page=5", nil)
	cards = decodeList(t, resp)
	if len(cards) != 5 {
		t.Fatalf("expected a 5-card page, got %d", len(cards))
	}
}

func TestSeedIdempotent(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doRequest(t, ts, http.MethodPost, "/api/cards/seed", nil)
	wantStatus(t, resp, http.StatusCreated)
	body := decodeBody(t, resp)
	if asInt(t, body["added"]) != 40 || asInt(t, body["updated"]) != 0 || asInt(t, body["total"]) != 40 {
		t.Fatalf("unexpected first seed result: %v", body)
	}

	resp = doRequest(t, ts, http.MethodPost, "/api/cards/seed", nil)
	wantStatus(t, resp, http.StatusCreated)
	body = decodeBody(t, resp)
	if asInt(t, body["added"]) != 0 || asInt(t, body["updated"]) != 40 || asInt(t, body["total"]) != 40 {
		t.Fatalf("second seed must insert nothing: %v", body)
	}
}

func createTestGame(t *testing.T, ts *httptest.Server) int {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{})
	wantStatus(t, resp, http.StatusCreated)
	return asInt(t, decodeBody(t, resp)["id"])
}

func createTestGameWithStart(t *testing.T, ts *httptest.Server, startPlayer int) int {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", map[string]any{
		"start_player": startPlayer,
	})
	wantStatus(t, resp, http.StatusCreated)
	return asInt(t, decodeBody(t, resp)["id"])
}
