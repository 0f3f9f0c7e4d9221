package dao

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NHopewell/nfl-event-parser/internal/records"
	"github.com/NHopewell/nfl-event-parser/internal/utils"
	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// LocalDAO writes one timestamped artifact per run under outputDir.
type LocalDAO struct {
	outputDir string
	format    string
	now       func() time.Time
}

func NewLocalDAO(outputDir, format string) *LocalDAO {
	if err := utils.CreateDirectoryIfNotExists(outputDir); err != nil {
		logrus.WithError(err).Fatal("Failed to create output directory")
	}

	return &LocalDAO{
		outputDir: outputDir,
		format:    format,
		now:       time.Now,
	}
}

func (u *LocalDAO) SaveEvents(events []records.Event) error {
	path := filepath.Join(u.outputDir, u.now().Format(OUTPUT_TIMESTAMP_LAYOUT)+"."+u.format)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch u.format {
	case FormatCSV:
		err = gocsv.MarshalFile(toCSVEvents(events), file)
	default:
		err = utils.WriteJSONFile(file, events, "    ")
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logrus.Infof("Saved %d events to %s", len(events), path)
	return nil
}
