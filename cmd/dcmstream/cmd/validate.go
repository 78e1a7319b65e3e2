package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitter-badger/dicom-streams/dicom"
)

// newValidateCmd gates a stream on its transmission context and reports the
// outcome through the exit status.
func newValidateCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a DICOM stream against transmission contexts",
		Long: `validate inspects the file meta information of a DICOM file (or stdin) and
accepts it when its (SOP Class UID, Transfer Syntax UID) pair matches one of
the given contexts. Without --context only the stream signature is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			contextStrings, _ := cmd.Flags().GetStringSlice("context")
			contexts, err := parseContexts(contextStrings)
			if err != nil {
				return err
			}

			stage, err := dicom.ValidateFlow(dicom.NewReaderSource(in, 0), contexts...)
			if err != nil {
				return err
			}
			var total int
			for {
				chunk, err := stage.NextChunk()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				total += len(chunk)
			}
			slog.Info("stream accepted", "bytes", total)
			fmt.Println("OK")
			return nil
		},
	}
	cmd.Flags().StringSlice("context", nil, "accepted context, SOPCLASSUID:TRANSFERSYNTAXUID")
	return cmd
}

func parseContexts(contextStrings []string) ([]dicom.ValidationContext, error) {
	var contexts []dicom.ValidationContext
	for _, s := range contextStrings {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --context %q, expected SOPCLASSUID:TRANSFERSYNTAXUID", s)
		}
		contexts = append(contexts, dicom.ValidationContext{
			SOPClassUID:       parts[0],
			TransferSyntaxUID: parts[1],
		})
	}
	return contexts, nil
}
