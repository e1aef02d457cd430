package player

import (
	"math"
	"math/rand"
)

func roundToTwo(value float64) float64 {
	return math.Round(value*100) / 100
}

func randomInt(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

// GenerateRatings draws a ratings map for a player: the natural position
// lands in [50,100], every other position in [0,50]. The gap keeps
// on-position play meaningfully stronger than off-position play.
func GenerateRatings(naturalPosition Position, rng *rand.Rand) Ratings {
	ratings := make(Ratings, len(Positions))
	for _, pos := range Positions {
		if pos == naturalPosition {
			ratings[pos] = randomInt(rng, 50, 100)
		} else {
			ratings[pos] = randomInt(rng, 0, 50)
		}
	}
	return ratings
}

// Overall is the arithmetic mean of all position ratings, rounded to two
// decimals. An empty ratings map yields 0.
func Overall(ratings Ratings) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, value := range ratings {
		total += value
	}
	return roundToTwo(float64(total) / float64(len(ratings)))
}

// SquadAverage is the mean of Overall across the squad, rounded to two
// decimals; 0 for an empty squad.
func SquadAverage(players []Player) float64 {
	if len(players) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range players {
		total += p.Overall
	}
	return roundToTwo(total / float64(len(players)))
}

// NaturalRating averages each player's rating at their own natural position.
// It rewards squads whose players are properly specialised over squads with
// inflated generic overalls. Falls back to 50 when no player has a rating at
// their natural position.
func NaturalRating(players []Player) float64 {
	total := 0.0
	counted := 0
	for _, p := range players {
		rating, ok := p.Ratings[p.NaturalPosition]
		if !ok {
			continue
		}
		total += float64(rating)
		counted++
	}
	if counted == 0 {
		return 50
	}
	return roundToTwo(total / float64(counted))
}
