package main

import (
	"log/slog"
	"os"

	"etl/pkg/etl"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	res, err := etl.Run(etl.DefaultConfig(), logger)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
	logger.Info("pipeline complete", "path", res.Path, "rows", res.Rows, "cols", len(res.Columns))
}
