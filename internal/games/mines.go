package games

import (
	"math"
	"sort"

	"tg-casino/internal/rng"
)

// Canonical mines board: 5x5 grid with 5 mines.
const (
	MinesGridSize         = 25
	MinesDefaultMineCount = 5
)

// PlaceMines picks mineCount distinct cell indices uniformly over a cells-cell
// grid, returned sorted.
func PlaceMines(cells, mineCount int, src rng.Source) []int {
	placed := make(map[int]bool, mineCount)
	for len(placed) < mineCount {
		placed[src.IntN(cells)] = true
	}
	mines := make([]int, 0, mineCount)
	for cell := range placed {
		mines = append(mines, cell)
	}
	sort.Ints(mines)
	return mines
}

// MinesMultiplier is the accumulating cash-out multiplier after revealed safe
// cells: 1 + (revealed/safe)*2.5, never below 1. Monotonically non-decreasing
// in revealed.
func MinesMultiplier(revealed, cells, mineCount int) float64 {
	safe := cells - mineCount
	if safe <= 0 {
		return 1
	}
	m := 1 + (float64(revealed)/float64(safe))*2.5
	return math.Max(1, m)
}

// MinesPayout converts the current multiplier into a whole-unit payout.
func MinesPayout(bet int64, multiplier float64) int64 {
	return int64(math.Floor(float64(bet) * multiplier))
}

// MinesDetail is the outcome record for a finished mines round.
type MinesDetail struct {
	GridSize      int     `json:"grid_size"`
	MineCount     int     `json:"mine_count"`
	MinePositions []int   `json:"mine_positions"`
	Revealed      []int   `json:"revealed"`
	Multiplier    float64 `json:"multiplier"`
	Status        string  `json:"status"` // "won", "lost", "cashed_out", "expired"
}
