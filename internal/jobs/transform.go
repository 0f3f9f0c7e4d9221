package jobs

import (
	"errors"
	"fmt"

	"github.com/NHopewell/nfl-event-parser/internal/dates"
	"github.com/NHopewell/nfl-event-parser/internal/records"
)

// ErrMissingRanking indicates a scoreboard event referenced a team id with no
// ranking record in the snapshot. The join fails loudly rather than guessing.
var ErrMissingRanking = errors.New("no ranking found for team")

// Combine joins filtered scoreboard events with filtered team rankings by
// team id and reshapes each event into the canonical thirteen-field form.
// The output order matches the scoreboard input order.
func Combine(scoreboard, rankings []records.Record) ([]records.Event, error) {
	rankingsByTeam, err := indexRankingsByTeam(rankings)
	if err != nil {
		return nil, err
	}

	events := make([]records.Event, 0, len(scoreboard))
	for _, rec := range scoreboard {
		combined, err := rec.StringField("event_date")
		if err != nil {
			return nil, err
		}
		date, clock, err := dates.SplitDateTime(combined)
		if err != nil {
			return nil, err
		}
		rec["event_date"], rec["event_time"] = date, clock

		if err := injectRanks(rec, rankingsByTeam, "away"); err != nil {
			return nil, err
		}
		if err := injectRanks(rec, rankingsByTeam, "home"); err != nil {
			return nil, err
		}

		event, err := records.NewEvent(rec)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// injectRanks copies rank and adjusted_points from the ranking record for the
// event's away or home team into the event record.
func injectRanks(rec records.Record, rankingsByTeam map[string]records.Record, side string) error {
	teamID, err := rec.StringField(side + "_team_id")
	if err != nil {
		return err
	}

	team, ok := rankingsByTeam[teamID]
	if !ok {
		return fmt.Errorf("%w: %s (%s)", ErrMissingRanking, teamID, side)
	}

	rank, err := team.Field("rank")
	if err != nil {
		return err
	}
	points, err := team.Field("adjusted_points")
	if err != nil {
		return err
	}

	rec[side+"_rank"], rec[side+"_rank_points"] = rank, points
	return nil
}

// indexRankingsByTeam keys the ranking snapshot by team id for O(1) joins.
// A duplicate team id keeps the later record.
func indexRankingsByTeam(rankings []records.Record) (map[string]records.Record, error) {
	byTeam := make(map[string]records.Record, len(rankings))
	for _, team := range rankings {
		teamID, err := team.StringField("team_id")
		if err != nil {
			return nil, err
		}
		byTeam[teamID] = team
	}
	return byTeam, nil
}
