// Package audit keeps an append-only trail of pipeline stage invocations,
// one dated file per day, separate from the console log.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NHopewell/nfl-event-parser/internal/utils"
	"github.com/sirupsen/logrus"
)

// Log appends stage entries to <dir>/<YYYY-MM-DD>.txt.
type Log struct {
	dir string
	now func() time.Time
}

func NewLog(dir string) (*Log, error) {
	if err := utils.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, err
	}
	return &Log{dir: dir, now: time.Now}, nil
}

// Append records that a stage ran. Entry format:
//
//	Ran: <stage>
//	Ran at: <timestamp>
func (l *Log) Append(stage string) error {
	now := l.now()
	path := filepath.Join(l.dir, now.Format("2006-01-02")+".txt")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	entry := fmt.Sprintf("\nRan: %s\nRan at: %s\n", stage, now.Format(time.RFC3339))
	_, err = file.WriteString(entry)
	return err
}

// Stage records the invocation to log and then runs fn. The audit trail is
// best-effort: a failed append is logged as a warning and never fails the
// stage itself.
func Stage[T any](log *Log, name string, fn func() (T, error)) (T, error) {
	if err := log.Append(name); err != nil {
		logrus.Warnf("Failed to write audit entry for stage %s: %v", name, err)
	}
	return fn()
}
