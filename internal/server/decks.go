package server

import (
	"math/rand"

	"radlands-tracker/internal/db"
)

func cardIDs(cards []db.Card) []int64 {
	ids := make([]int64, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, int64(card.ID))
	}
	return ids
}

// shuffledIDs returns an independent random permutation of ids.
func shuffledIDs(ids []int64, rng *rand.Rand) []int64 {
	out := append([]int64{}, ids...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// dealHand takes count cards off the top of deck into a hand. count is
// clamped to the deck size.
func dealHand(deck []int64, count int) (remaining, hand []int64) {
	if count < 0 {
		count = 0
	}
	if count > len(deck) {
		count = len(deck)
	}
	hand = append([]int64{}, deck[:count]...)
	remaining = append([]int64{}, deck[count:]...)
	return remaining, hand
}

// initialDrawTotal sums the initial_draw values over a camp set. Camps
// without one contribute nothing.
func initialDrawTotal(camps []db.Card) int {
	total := 0
	for _, camp := range camps {
		if camp.InitialDraw != nil {
			total += *camp.InitialDraw
		}
	}
	return total
}

// clampWater applies a signed delta to a water pool, floored at zero.
func clampWater(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

// advanceTurn flips the current player. The turn counter ticks when play
// comes back around to player 1.
func advanceTurn(currentPlayer, turnNumber int) (int, int) {
	if currentPlayer == 1 {
		return 2, turnNumber
	}
	return 1, turnNumber + 1
}
