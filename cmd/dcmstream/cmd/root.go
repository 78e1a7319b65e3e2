// Package cmd defines the dcmstream command tree.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitter-badger/dicom-streams/internal/logging"
)

// NewRoot builds the dcmstream root command.
func NewRoot(ctx context.Context, gitSHA string) *cobra.Command {
	root := &cobra.Command{
		Use:   "dcmstream",
		Short: "streaming DICOM inspection and rewriting",
		Long:  "dcmstream parses, validates, rewrites and inspects DICOM streams without buffering them.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			levelName, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(levelName))); err != nil {
				level = slog.LevelInfo
			}
			if logFile != "" {
				slog.SetDefault(logging.Logger(logging.FileWriter(logFile), true, level))
			} else {
				slog.SetDefault(logging.Logger(os.Stderr, false, level))
			}
		},
	}
	root.AddCommand(
		newVersionCmd(gitSHA),
		newDumpCmd(ctx),
		newModifyCmd(ctx),
		newValidateCmd(ctx),
	)
	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "Write logs to a rotated file instead of stderr")
	return root
}

func newVersionCmd(gitSHA string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitSHA)
		},
	}
}
