package jobs

import (
	"errors"
	"fmt"

	"github.com/NHopewell/nfl-event-parser/internal/audit"
	"github.com/NHopewell/nfl-event-parser/internal/chalk"
	"github.com/NHopewell/nfl-event-parser/internal/dao"
	"github.com/NHopewell/nfl-event-parser/internal/records"
	"github.com/sirupsen/logrus"
)

// ErrNoScoreboardData indicates the scoreboard endpoint answered successfully
// but held no games for the requested window, which usually means a date out
// of range was entered by mistake.
var ErrNoScoreboardData = errors.New("no scoreboard data returned for the requested date range")

type pulledData struct {
	Scoreboard []records.Record
	Rankings   []records.Record
}

// RunPipeline pulls scoreboard and rankings data, joins and reshapes it, and
// hands the result to the output sink. Each stage is recorded in the audit
// log; the sink is never invoked if an earlier stage fails.
func RunPipeline(client chalk.Client, sink dao.DAO, auditLog *audit.Log, startDate string, deltaDays int) error {
	pulled, err := audit.Stage(auditLog, "pull", func() (pulledData, error) {
		return pull(client, startDate, deltaDays)
	})
	if err != nil {
		return fmt.Errorf("pull data: %w", err)
	}
	logrus.Infof("Pulled %d events and %d team rankings", len(pulled.Scoreboard), len(pulled.Rankings))

	events, err := audit.Stage(auditLog, "transform", func() ([]records.Event, error) {
		return Combine(pulled.Scoreboard, pulled.Rankings)
	})
	if err != nil {
		return fmt.Errorf("transform data: %w", err)
	}
	logrus.Infof("Transformed %d events", len(events))

	if _, err := audit.Stage(auditLog, "load", func() (struct{}, error) {
		return struct{}{}, sink.SaveEvents(events)
	}); err != nil {
		return fmt.Errorf("save events: %w", err)
	}

	logrus.Info("Pipeline completed successfully.")
	return nil
}

func pull(client chalk.Client, startDate string, deltaDays int) (pulledData, error) {
	scoreboard, err := client.FetchScoreboard(startDate, deltaDays)
	if err != nil {
		return pulledData{}, fmt.Errorf("fetch scoreboard: %w", err)
	}
	if len(scoreboard) == 0 {
		return pulledData{}, ErrNoScoreboardData
	}

	rankings, err := client.FetchRankings()
	if err != nil {
		return pulledData{}, fmt.Errorf("fetch rankings: %w", err)
	}

	return pulledData{Scoreboard: scoreboard, Rankings: rankings}, nil
}
