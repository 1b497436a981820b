// Package main запускает проверку номеров карт и выводит отчёт.
package main

import (
	"fmt"
	"os"

	"github.com/mmeshcher/cardcheck/internal/config"
	"github.com/mmeshcher/cardcheck/internal/logger"
	"github.com/mmeshcher/cardcheck/internal/model"
	"github.com/mmeshcher/cardcheck/internal/report"
	"github.com/mmeshcher/cardcheck/internal/sample"
	"github.com/mmeshcher/cardcheck/internal/service"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization error: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	sugar := log.Sugar()

	svc := service.NewService(log)

	var rep *model.Report
	if len(cfg.Numbers) > 0 {
		sugar.Debugw("checking card numbers", "count", len(cfg.Numbers))
		rep = svc.InspectNumbers(cfg.Numbers)
	} else {
		batch := sample.Batch()
		sugar.Infow("no card numbers given, checking sample batch", "count", len(batch))
		rep = svc.Inspect(batch)
	}

	if err := report.Write(os.Stdout, cfg.Format, rep); err != nil {
		sugar.Fatalw("report output error", "error", err)
	}
}
