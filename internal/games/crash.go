package games

import (
	"math"
	"time"

	"tg-casino/internal/rng"
)

// The multiplier climbs 0.01 every 100ms from 1.00 until the crash point.
const (
	CrashTickInterval = 100 * time.Millisecond
	CrashTickStep     = 0.01
)

// DrawCrashPoint samples the round's crash point from a tiered distribution
// with roughly a 4% instant-crash rate:
//
//	 4%  -> 1.00
//	11%  -> [1.0, 1.5)
//	35%  -> [1.5, 2.5)
//	35%  -> [2.5, 7.5)
//	15%  -> [7.5, 22.5)
func DrawCrashPoint(src rng.Source) float64 {
	tier := src.Float64()
	switch {
	case tier < 0.04:
		return 1.0
	case tier < 0.15:
		return 1.0 + src.Float64()*0.5
	case tier < 0.50:
		return 1.5 + src.Float64()*1.0
	case tier < 0.85:
		return 2.5 + src.Float64()*5.0
	default:
		return 7.5 + src.Float64()*15.0
	}
}

// CrashMultiplierAt returns the rising multiplier after elapsed time on the
// round clock: 1.00 + 0.01 per completed tick.
func CrashMultiplierAt(elapsed time.Duration) float64 {
	if elapsed < 0 {
		return 1.0
	}
	ticks := elapsed / CrashTickInterval
	return 1.0 + CrashTickStep*float64(ticks)
}

// CrashPayout converts a cash-out multiplier into a whole-unit payout.
func CrashPayout(bet int64, multiplier float64) int64 {
	return int64(math.Floor(float64(bet) * multiplier))
}

// CrashDetail is the outcome record for a finished crash round.
type CrashDetail struct {
	CrashPoint  float64 `json:"crash_point"`
	CashedOutAt float64 `json:"cashed_out_at,omitempty"`
	Status      string  `json:"status"` // "cashed_out", "crashed"
}
