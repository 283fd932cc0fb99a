package model

// AnswerGroup is a set of players whose answers were treated as equivalent
// for scoring in one round
type AnswerGroup struct {
	Answer           string     `json:"answer"` // original-cased text of the first member
	NormalizedAnswer string     `json:"normalizedAnswer"`
	PlayerIDs        []PlayerID `json:"playerIds"`
	PlayerNames      []string   `json:"playerNames"`
	Points           int        `json:"points"`
}

// PlayerScore is one player's point delta for a round
type PlayerScore struct {
	PlayerID PlayerID `json:"playerId"`
	Points   int      `json:"points"`
}

// RoundResult is the immutable record of one completed round
type RoundResult struct {
	Round        int           `json:"round"`
	Prompt       string        `json:"prompt"`
	AnswerGroups []AnswerGroup `json:"answerGroups"`
	PlayerScores []PlayerScore `json:"playerScores"`
}

// FinalStanding is one entry in the end-of-game leaderboard
type FinalStanding struct {
	PlayerID   PlayerID `json:"playerId"`
	PlayerName string   `json:"playerName"`
	Score      int      `json:"score"`
}
