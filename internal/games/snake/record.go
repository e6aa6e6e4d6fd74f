package snake

import (
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// Record converts a finished round into its persisted form.
func (s Snapshot) Record(roundID, gameID string) storage.RoundRecord {
	r := storage.RoundRecord{
		RoundID:    roundID,
		GameID:     gameID,
		Level:      s.Level,
		Outcome:    string(s.State),
		Winner:     s.Winner,
		DurationMs: s.Now,
	}
	if s.Loser != "" {
		r.Cause = s.Cause.String()
	}
	for _, a := range s.Agents {
		r.Agents = append(r.Agents, storage.RoundAgent{
			Name:   a.Name,
			Bot:    a.Bot,
			Points: a.Points,
			Length: a.Len,
			Status: a.Status.String(),
		})
	}
	return r
}
