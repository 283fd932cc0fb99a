package scoring

import (
	"sort"

	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/services/match"
)

// GroupAnswers partitions the round's submissions into answer groups.
// Groups form in first-appearance order. Each submission joins the
// first group with an identical normalized key, otherwise the first
// group within fuzzy-match tolerance, otherwise it opens a new group.
func GroupAnswers(players []model.Player) []model.AnswerGroup {
	var groups []model.AnswerGroup

	for _, p := range players {
		if p.IsSpectator || p.CurrentAnswer == "" {
			continue
		}

		normalized := match.Normalize(p.CurrentAnswer)

		idx := -1
		for i := range groups {
			if groups[i].NormalizedAnswer == normalized {
				idx = i
				break
			}
		}
		if idx == -1 {
			for i := range groups {
				if match.Similar(groups[i].NormalizedAnswer, normalized) {
					idx = i
					break
				}
			}
		}

		if idx >= 0 {
			groups[idx].PlayerIDs = append(groups[idx].PlayerIDs, p.ID)
			groups[idx].PlayerNames = append(groups[idx].PlayerNames, p.Name)
			continue
		}

		groups = append(groups, model.AnswerGroup{
			Answer:           p.CurrentAnswer,
			NormalizedAnswer: normalized,
			PlayerIDs:        []model.PlayerID{p.ID},
			PlayerNames:      []string{p.Name},
		})
	}

	return groups
}

// ScoreGroups assigns points to each group. A lone answer scores
// nothing, a pair scores 3 each, and a larger group scores 1 each.
func ScoreGroups(groups []model.AnswerGroup) []model.AnswerGroup {
	for i := range groups {
		switch size := len(groups[i].PlayerIDs); {
		case size <= 1:
			groups[i].Points = 0
		case size == 2:
			groups[i].Points = 3
		default:
			groups[i].Points = 1
		}
	}
	return groups
}

// BuildRoundResult groups and scores one round's submissions. Every
// non-spectator player gets exactly one score entry; players who never
// submitted get a zero-point entry.
func BuildRoundResult(round int, prompt string, players []model.Player) model.RoundResult {
	groups := ScoreGroups(GroupAnswers(players))

	var scores []model.PlayerScore
	for _, g := range groups {
		for _, id := range g.PlayerIDs {
			scores = append(scores, model.PlayerScore{PlayerID: id, Points: g.Points})
		}
	}

	for _, p := range players {
		if !p.IsSpectator && p.CurrentAnswer == "" {
			scores = append(scores, model.PlayerScore{PlayerID: p.ID, Points: 0})
		}
	}

	return model.RoundResult{
		Round:        round,
		Prompt:       prompt,
		AnswerGroups: groups,
		PlayerScores: scores,
	}
}

// Standings returns players ranked by total score, highest first.
// Ties keep join order. Spectators are excluded.
func Standings(players []model.Player) []model.FinalStanding {
	var standings []model.FinalStanding
	for _, p := range players {
		if p.IsSpectator {
			continue
		}
		standings = append(standings, model.FinalStanding{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      p.Score,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	return standings
}
