package rating

import "math"

const (
	// K is the step size applied to every rating change.
	K = 0.1
	// Floor is the lowest rating a player can be pushed down to.
	Floor = 2.0
	// Ceiling is the top of the documented rating range. It is not enforced.
	Ceiling = 8.0
	// Scale is the rating difference that shifts the expected score by a factor of ten.
	Scale = 1.0
)

// Standing is the part of a player record the rating model reads and writes.
type Standing struct {
	Rating        float64
	Wins          int
	Losses        int
	MatchesPlayed int
}

// Expected returns the probability that a player rated r1 beats one rated r2.
func Expected(r1, r2 float64) float64 {
	return 1 / (1 + math.Pow(10, (r2-r1)/Scale))
}

// Delta returns the signed change for the first player given the outcome.
func Delta(r1, r2 float64, firstWon bool) float64 {
	actual := 0.0
	if firstWon {
		actual = 1.0
	}
	return K * (actual - Expected(r1, r2))
}

// Round3 rounds to three decimals.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Apply shifts a rating by delta, rounds it and clamps it to the floor.
func Apply(r, delta float64) float64 {
	return math.Max(Floor, Round3(r+delta))
}

// Update returns the new standings of both players after a match.
// The inputs are not modified.
func Update(p1, p2 Standing, p1Won bool) (Standing, Standing) {
	delta := Delta(p1.Rating, p2.Rating, p1Won)

	p1.Rating = Apply(p1.Rating, delta)
	p2.Rating = Apply(p2.Rating, -delta)
	p1.MatchesPlayed++
	p2.MatchesPlayed++
	if p1Won {
		p1.Wins++
		p2.Losses++
	} else {
		p2.Wins++
		p1.Losses++
	}
	return p1, p2
}

// MigrateLegacy maps a rating stored on the old 1000-based scale onto the
// current one. Ratings already on the current scale are returned unchanged.
func MigrateLegacy(r float64) float64 {
	if r > 100 {
		return 3.0 + (r-1000)/200
	}
	return r
}

// InRange reports whether r is inside the documented rating range.
func InRange(r float64) bool {
	return r >= Floor && r <= Ceiling
}
