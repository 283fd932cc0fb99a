package factory

import (
	"time"

	"github.com/lukemay/blankparty/internal/dependencies/mocks"
	"github.com/lukemay/blankparty/internal/services/prompt"
	"github.com/lukemay/blankparty/internal/services/room"
	"github.com/lukemay/blankparty/internal/storage/memory"
	"github.com/lukemay/blankparty/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MockScheduler *mocks.MockScheduler
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockScheduler := mocks.NewMockScheduler()

	app := newWithDependencies(store, mockClock, mockRandom, mockScheduler, "blankparty_test", testutil.NopLogger())

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MockScheduler: mockScheduler,
	}
}

// UseDeck replaces the prompt deck so tests see deterministic prompts.
// The mock random leaves shuffle order untouched.
func (t *TestApp) UseDeck(deck []string) {
	t.PromptService = prompt.NewServiceWithDeck(t.MockRandom, deck)
	t.Controller = room.NewController(
		t.Storage, t.Registry,
		t.PromptService, t.BotService,
		t.HubManager, t.MockClock, t.MockScheduler, testutil.NopLogger(),
	)
}
