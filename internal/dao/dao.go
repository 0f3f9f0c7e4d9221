package dao

import (
	"context"
	"fmt"

	"github.com/NHopewell/nfl-event-parser/internal/records"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"

	// OUTPUT_TIMESTAMP_LAYOUT names artifacts by run time. Two runs within
	// the same second overwrite each other; fine for a one-shot CLI.
	OUTPUT_TIMESTAMP_LAYOUT = "2006-01-02T15-04-05"
)

type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// DAO persists the transformed event sequence as one timestamped artifact.
type DAO interface {
	SaveEvents(events []records.Event) error
}

// csvEvent mirrors records.Event with every value rendered as a string, since
// rank fields can arrive as either numbers or strings.
type csvEvent struct {
	EventID        string `csv:"event_id"`
	EventDate      string `csv:"event_date"`
	EventTime      string `csv:"event_time"`
	AwayTeamID     string `csv:"away_team_id"`
	AwayNickName   string `csv:"away_nick_name"`
	AwayCity       string `csv:"away_city"`
	AwayRank       string `csv:"away_rank"`
	AwayRankPoints string `csv:"away_rank_points"`
	HomeTeamID     string `csv:"home_team_id"`
	HomeNickName   string `csv:"home_nick_name"`
	HomeCity       string `csv:"home_city"`
	HomeRank       string `csv:"home_rank"`
	HomeRankPoints string `csv:"home_rank_points"`
}

func toCSVEvents(events []records.Event) []csvEvent {
	rows := make([]csvEvent, 0, len(events))
	for _, event := range events {
		rows = append(rows, csvEvent{
			EventID:        event.EventID,
			EventDate:      event.EventDate,
			EventTime:      event.EventTime,
			AwayTeamID:     event.AwayTeamID,
			AwayNickName:   event.AwayNickName,
			AwayCity:       event.AwayCity,
			AwayRank:       fmt.Sprint(event.AwayRank),
			AwayRankPoints: fmt.Sprint(event.AwayRankPoints),
			HomeTeamID:     event.HomeTeamID,
			HomeNickName:   event.HomeNickName,
			HomeCity:       event.HomeCity,
			HomeRank:       fmt.Sprint(event.HomeRank),
			HomeRankPoints: fmt.Sprint(event.HomeRankPoints),
		})
	}
	return rows
}
