package player

import (
	"fmt"
	"math/rand"
)

var firstNames = []string{
	"Ade", "Kwame", "Lebo", "Ibrahim", "Yao", "Samuel", "Kofi", "Thabo", "Said", "Ahmed",
	"Chidi", "Femi", "Sipho", "Tariq", "Ansu", "Didier", "Youssef", "Karim", "Hakim", "Ali",
}

var lastNames = []string{
	"Okoro", "Traore", "Diallo", "Mensah", "Moyo", "Ndlovu", "Abebe", "Mahrez", "Koulibaly", "Etim",
	"Kamara", "Ajayi", "Bwalya", "Abdi", "Boakye", "Dlamini", "Ouedraogo", "Onyango", "Mabena", "Amadou",
}

// SquadSize is the fixed roster size every federation registers.
const SquadSize = 23

type positionCount struct {
	count    int
	position Position
}

// positionDistribution adds up to SquadSize.
var positionDistribution = []positionCount{
	{count: 3, position: PositionGK},
	{count: 7, position: PositionDF},
	{count: 8, position: PositionMD},
	{count: 5, position: PositionAT},
}

// GenerateName picks a random first/last name pair from the pool.
func GenerateName(rng *rand.Rand) string {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	return fmt.Sprintf("%s %s", first, last)
}

// GenerateSquad produces a full 23-player squad with ratings and overalls
// already computed. The first player is the captain.
func GenerateSquad(rng *rand.Rand) []Player {
	squad := make([]Player, 0, SquadSize)
	index := 0
	for _, dist := range positionDistribution {
		for i := 0; i < dist.count; i++ {
			ratings := GenerateRatings(dist.position, rng)
			squad = append(squad, Player{
				Name:            GenerateName(rng),
				NaturalPosition: dist.position,
				Ratings:         ratings,
				Overall:         Overall(ratings),
				IsCaptain:       index == 0,
				SquadIndex:      index,
			})
			index++
		}
	}
	return squad
}
