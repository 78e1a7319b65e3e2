package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitter-badger/dicom-streams/dicom"
	"github.com/gitter-badger/dicom-streams/dicom/tag"
)

// newDumpCmd prints the part structure of a DICOM stream, or just a set of
// collected elements when tags are given.
func newDumpCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "print the part structure of a DICOM stream",
		Long:  "dump parses a DICOM file (or stdin) and prints each emitted part. With --tag, only the named elements are collected and printed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			tagStrings, _ := cmd.Flags().GetStringSlice("tag")
			if len(tagStrings) > 0 {
				return dumpElements(in, tagStrings)
			}
			return dumpParts(in)
		},
	}
	cmd.Flags().StringSlice("tag", nil, "collect and print only these tags, e.g. 0010,0010")
	return cmd
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func dumpParts(in io.Reader) error {
	src := dicom.ParseFlow(in)
	for {
		part, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		printPart(part)
	}
}

func printPart(part dicom.Part) {
	switch p := part.(type) {
	case dicom.PreamblePart:
		fmt.Println("preamble")
	case dicom.HeaderPart:
		name := ""
		if info, err := tag.Find(p.Tag); err == nil {
			name = " " + info.Keyword
		}
		fmt.Printf("%s %s length=%d%s\n", p.Tag, p.VR, p.Length, name)
	case dicom.ValueChunkPart:
		fmt.Printf("  value chunk %d bytes last=%v\n", len(p.Bytes()), p.Last)
	case dicom.SequencePart:
		fmt.Printf("%s SQ length=%d\n", p.Tag, p.Length)
	case dicom.ItemPart:
		fmt.Printf("  item %d length=%d\n", p.Index, p.Length)
	case dicom.ItemDelimitationPart:
		fmt.Printf("  item %d end\n", p.Index)
	case dicom.SequenceDelimitationPart:
		fmt.Println("sequence end")
	case dicom.FragmentsPart:
		fmt.Printf("%s %s fragments\n", p.Tag, p.VR)
	case dicom.DeflatedChunkPart:
		fmt.Printf("deflated chunk %d bytes\n", len(p.Bytes()))
	default:
		fmt.Printf("%T\n", part)
	}
}

func dumpElements(in io.Reader, tagStrings []string) error {
	paths, maxName, err := parseTagFlags(tagStrings)
	if err != nil {
		return err
	}
	collect, err := dicom.CollectFlow(dicom.ParseFlow(in), "dump", paths...)
	if err != nil {
		return err
	}
	for {
		part, err := collect.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		collected, ok := part.(dicom.ElementsPart)
		if !ok {
			continue
		}
		for _, e := range collected.Elements {
			fmt.Printf("%-*s %s %s\n", maxName, e.Tag, e.VR, e.StringValue(collected.CharacterSets))
		}
		slog.Debug("collected elements", "count", len(collected.Elements), "charsets", collected.CharacterSets.String())
		return nil
	}
}

func parseTagFlags(tagStrings []string) ([]tag.Path, int, error) {
	var paths []tag.Path
	maxName := 0
	for _, s := range tagStrings {
		t, err := tag.Parse(s)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid --tag %q: %w", s, err)
		}
		if n := len(t.String()); n > maxName {
			maxName = n
		}
		paths = append(paths, tag.NewPath(t))
	}
	return paths, maxName, nil
}
