package tsp_evolve

import "math/rand"

// TournamentSelector picks parents by sampling tournamentSize distinct
// members uniformly without replacement and keeping the cheapest. The two
// parent draws of a tick are independent tournaments, so the same member
// may win both.
type TournamentSelector struct {
	Size int
}

func NewTournamentSelector(size int) *TournamentSelector {
	return &TournamentSelector{Size: size}
}

// Select returns the winning chromosome by reference; the population is
// untouched. With Size == population size every member enters the
// tournament, so the population's best always wins. Ties go to the lowest
// population index, matching the population's own best/worst rule.
func (s *TournamentSelector) Select(pop *Population, rng *rand.Rand) *Chromosome {
	entrants := sampleIndices(rng, pop.Size(), s.Size)
	winner := entrants[0]
	for _, idx := range entrants[1:] {
		cost, best := pop.Member(idx).Fitness(), pop.Member(winner).Fitness()
		if cost < best || (cost == best && idx < winner) {
			winner = idx
		}
	}
	return pop.Member(winner)
}
