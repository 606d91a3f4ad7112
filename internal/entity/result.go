package entity

import "time"

// Result is the outcome of a finished game kept for the standings.
type Result struct {
	GameID     string    `json:"game_id"`
	Status     Status    `json:"status"`
	Winner     string    `json:"winner,omitempty"`
	WinnerMark string    `json:"winner_mark,omitempty"`
	Players    []Player  `json:"players"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(game *Game, finishedAt time.Time) *Result {
	result := &Result{
		GameID:     game.ID,
		Status:     game.Status,
		Players:    []Player{game.CurrentPlayer, game.OtherPlayer},
		FinishedAt: finishedAt,
	}

	if game.Winner != nil {
		result.Winner = game.Winner.Name
		result.WinnerMark = game.Winner.Mark
	}

	return result
}

func (that *Result) IsDraw() bool {
	return that.Status == StatusDraw
}

// StandingsKey - names the winner together with their mark, so two players
// sharing a name keep separate tallies.
func (that *Result) StandingsKey() string {
	return Player{Name: that.Winner, Mark: that.WinnerMark}.String()
}

// Standings is the win tally per player ("Adam (X's)") plus the number of draws.
type Standings struct {
	Wins  map[string]int64 `json:"wins"`
	Draws int64            `json:"draws"`
}
