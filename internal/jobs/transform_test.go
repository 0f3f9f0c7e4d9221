package jobs

import (
	"testing"

	"github.com/NHopewell/nfl-event-parser/internal/dates"
	"github.com/NHopewell/nfl-event-parser/internal/records"
	"github.com/stretchr/testify/assert"
)

func scoreboardFixture() []records.Record {
	return []records.Record{
		{
			"event_id":       "1233827",
			"event_date":     "2020-01-12 18:30",
			"away_team_id":   "T1",
			"away_nick_name": "Texans",
			"away_city":      "Houston",
			"home_team_id":   "T2",
			"home_nick_name": "Chiefs",
			"home_city":      "Kansas City",
		},
	}
}

func rankingsFixture() []records.Record {
	return []records.Record{
		{"team_id": "T1", "rank": 5.0, "adjusted_points": 10.0},
		{"team_id": "T2", "rank": 2.0, "adjusted_points": 20.0},
	}
}

func TestCombine(t *testing.T) {
	events, err := Combine(scoreboardFixture(), rankingsFixture())
	assert.NoError(t, err)
	assert.Equal(t, []records.Event{
		{
			EventID:        "1233827",
			EventDate:      "12-01-2020",
			EventTime:      "18:30",
			AwayTeamID:     "T1",
			AwayNickName:   "Texans",
			AwayCity:       "Houston",
			AwayRank:       5.0,
			AwayRankPoints: 10.0,
			HomeTeamID:     "T2",
			HomeNickName:   "Chiefs",
			HomeCity:       "Kansas City",
			HomeRank:       2.0,
			HomeRankPoints: 20.0,
		},
	}, events)
}

func TestCombine_PreservesInputOrder(t *testing.T) {
	scoreboard := scoreboardFixture()
	second := records.Record{
		"event_id":       "1233900",
		"event_date":     "2020-01-13 20:00",
		"away_team_id":   "T2",
		"away_nick_name": "Chiefs",
		"away_city":      "Kansas City",
		"home_team_id":   "T1",
		"home_nick_name": "Texans",
		"home_city":      "Houston",
	}
	scoreboard = append(scoreboard, second)

	events, err := Combine(scoreboard, rankingsFixture())
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "1233827", events[0].EventID)
	assert.Equal(t, "1233900", events[1].EventID)
	assert.Equal(t, "13-01-2020", events[1].EventDate)
	assert.Equal(t, 2.0, events[1].AwayRank)
}

func TestCombine_MissingEventDate(t *testing.T) {
	scoreboard := scoreboardFixture()
	delete(scoreboard[0], "event_date")

	_, err := Combine(scoreboard, rankingsFixture())
	assert.ErrorIs(t, err, records.ErrMissingField)
	assert.Contains(t, err.Error(), "event_date")
}

func TestCombine_MalformedEventDate(t *testing.T) {
	scoreboard := scoreboardFixture()
	scoreboard[0]["event_date"] = "January 12th"

	_, err := Combine(scoreboard, rankingsFixture())
	assert.ErrorIs(t, err, dates.ErrFormat)
}

func TestCombine_UnmatchedTeamID(t *testing.T) {
	scoreboard := scoreboardFixture()
	scoreboard[0]["home_team_id"] = "T99"

	_, err := Combine(scoreboard, rankingsFixture())
	assert.ErrorIs(t, err, ErrMissingRanking)
	assert.Contains(t, err.Error(), "T99")
}

func TestCombine_RankingMissingPoints(t *testing.T) {
	rankings := rankingsFixture()
	delete(rankings[0], "adjusted_points")

	_, err := Combine(scoreboardFixture(), rankings)
	assert.ErrorIs(t, err, records.ErrMissingField)
}

func TestCombine_DuplicateTeamIDLastWriteWins(t *testing.T) {
	rankings := append(rankingsFixture(),
		records.Record{"team_id": "T1", "rank": 9.0, "adjusted_points": 1.0})

	events, err := Combine(scoreboardFixture(), rankings)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, events[0].AwayRank)
}

func TestCombine_EmptyScoreboard(t *testing.T) {
	events, err := Combine(nil, rankingsFixture())
	assert.NoError(t, err)
	assert.Empty(t, events)
}
