package bot

import (
	"strings"
	"time"

	"github.com/lukemay/blankparty/internal/dependencies/random"
)

// Names are the display names available for bots, in assignment
// order. The length of this list is also the per-room bot cap.
var Names = []string{"CPU Alpha", "CPU Beta", "CPU Gamma", "CPU Delta", "CPU Epsilon"}

// MaxPerRoom is the most bots a host can add to one room.
var MaxPerRoom = len(Names)

const (
	minDelay = 1 * time.Second
	maxDelay = 5 * time.Second
)

// answersByKeyword maps a prompt's keyword to plausible answers
var answersByKeyword = map[string][]string{
	"Birthday":  {"cake", "party", "present", "candle", "wish"},
	"Chocolate": {"cake", "chip", "bar", "milk", "dark"},
	"Hot":       {"dog", "sauce", "weather", "fire", "summer"},
	"Cold":      {"water", "weather", "ice", "winter", "snow"},
}

var defaultAnswers = []string{
	"thing", "stuff", "time", "place", "person",
	"day", "way", "world", "life", "hand",
}

// Service picks answers and submission delays for bot players. It
// holds no room state; the caller owns scheduling.
type Service struct {
	random random.Random
}

func NewService(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// AnswerFor picks a random answer suited to the prompt. The keyword is
// whatever surrounds the blank; prompts with a known keyword draw from
// a themed pool, everything else from a generic one.
func (s *Service) AnswerFor(prompt string) string {
	answers := defaultAnswers
	if pool, ok := answersByKeyword[keyword(prompt)]; ok {
		answers = pool
	}
	return answers[s.random.Intn(len(answers))]
}

// DelayFor picks how long a bot waits before submitting, between 1
// and 5 seconds.
func (s *Service) DelayFor() time.Duration {
	return minDelay + time.Duration(s.random.Intn(int(maxDelay-minDelay)))
}

func keyword(prompt string) string {
	before, after, _ := strings.Cut(prompt, "___")
	if kw := strings.TrimSpace(before); kw != "" {
		return kw
	}
	return strings.TrimSpace(after)
}
