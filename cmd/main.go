package main

import (
	"flag"
	"fmt"

	"github.com/NHopewell/nfl-event-parser/internal/audit"
	"github.com/NHopewell/nfl-event-parser/internal/chalk"
	"github.com/NHopewell/nfl-event-parser/internal/cli"
	"github.com/NHopewell/nfl-event-parser/internal/config"
	"github.com/NHopewell/nfl-event-parser/internal/dao"
	"github.com/NHopewell/nfl-event-parser/internal/jobs"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	mode := flag.String("mode", "local", "output sink: local or r2")
	configPath := flag.String("config", "", "optional YAML config file path")
	flag.Parse()

	startDate, deltaDays, err := cli.ValidateArgs(flag.Args())
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println(cli.Banner())

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatal("Load config: ", err)
	}

	client := chalk.NewChalkClient(cfg)

	var sink dao.DAO
	switch *mode {
	case "local":
		sink = dao.NewLocalDAO(cfg.OutputDir, cfg.OutputFormat)
	case "r2":
		sink = dao.NewR2DAO("nfl-events", "normal/output", cfg.OutputFormat)
	default:
		logrus.Fatalf("Unknown mode: %s", *mode)
	}

	auditLog, err := audit.NewLog(cfg.AuditDir)
	if err != nil {
		logrus.Fatal("Create audit log: ", err)
	}

	if err := jobs.RunPipeline(client, sink, auditLog, startDate, deltaDays); err != nil {
		logrus.Fatal("Pipeline failed: ", err)
	}
}
