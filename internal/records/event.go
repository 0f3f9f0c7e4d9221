package records

// Event is the canonical output shape of the pipeline: one game joined with
// the current ranking of both teams. Field order matches the order keys must
// appear in the output artifact, so the struct is the ordering contract.
// Rank and points values pass through from the rankings endpoint unchanged,
// whether it sent them as numbers or strings.
type Event struct {
	EventID        string `json:"event_id"`
	EventDate      string `json:"event_date"`
	EventTime      string `json:"event_time"`
	AwayTeamID     string `json:"away_team_id"`
	AwayNickName   string `json:"away_nick_name"`
	AwayCity       string `json:"away_city"`
	AwayRank       any    `json:"away_rank"`
	AwayRankPoints any    `json:"away_rank_points"`
	HomeTeamID     string `json:"home_team_id"`
	HomeNickName   string `json:"home_nick_name"`
	HomeCity       string `json:"home_city"`
	HomeRank       any    `json:"home_rank"`
	HomeRankPoints any    `json:"home_rank_points"`
}

// NewEvent builds the canonical event from an intermediate record that has
// already been through datetime splitting and the rankings join. Any of the
// thirteen canonical keys missing from the record is an error.
func NewEvent(rec Record) (Event, error) {
	var event Event
	var err error

	stringFields := []struct {
		key  string
		dest *string
	}{
		{"event_id", &event.EventID},
		{"event_date", &event.EventDate},
		{"event_time", &event.EventTime},
		{"away_team_id", &event.AwayTeamID},
		{"away_nick_name", &event.AwayNickName},
		{"away_city", &event.AwayCity},
		{"home_team_id", &event.HomeTeamID},
		{"home_nick_name", &event.HomeNickName},
		{"home_city", &event.HomeCity},
	}
	for _, field := range stringFields {
		if *field.dest, err = rec.StringField(field.key); err != nil {
			return Event{}, err
		}
	}

	rawFields := []struct {
		key  string
		dest *any
	}{
		{"away_rank", &event.AwayRank},
		{"away_rank_points", &event.AwayRankPoints},
		{"home_rank", &event.HomeRank},
		{"home_rank_points", &event.HomeRankPoints},
	}
	for _, field := range rawFields {
		if *field.dest, err = rec.Field(field.key); err != nil {
			return Event{}, err
		}
	}

	return event, nil
}
