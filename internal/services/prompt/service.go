package prompt

import (
	"github.com/lukemay/blankparty/internal/dependencies/random"
)

// Service supplies prompts for games
type Service struct {
	random random.Random
	deck   []string
}

func NewService(rnd random.Random) *Service {
	return &Service{
		random: rnd,
		deck:   prompts,
	}
}

// NewServiceWithDeck creates a service with a custom deck (for testing)
func NewServiceWithDeck(rnd random.Random, deck []string) *Service {
	return &Service{
		random: rnd,
		deck:   deck,
	}
}

// ForGame returns count unique prompts in shuffled order. If count
// exceeds the deck size, the whole deck is returned.
func (s *Service) ForGame(count int) []string {
	shuffled := make([]string, len(s.deck))
	copy(shuffled, s.deck)

	s.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// DeckSize returns the number of prompts available
func (s *Service) DeckSize() int {
	return len(s.deck)
}
