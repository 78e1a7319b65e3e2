package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gitter-badger/dicom-streams/cmd/dcmstream/cmd"
	"github.com/gitter-badger/dicom-streams/internal/logging"
)

var gitSHA = "NA"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(logging.Logger(os.Stderr, false, slog.LevelInfo))
	if err := cmd.NewRoot(ctx, gitSHA).Execute(); err != nil {
		os.Exit(1)
	}
}
