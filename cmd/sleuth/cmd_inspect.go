package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sleuth/scenario"
)

var inspectFlags struct {
	scenarioPath string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a case file without playing it",
	Long: `Inspect validates a case file and prints its layout: every room with
its doors and clue, and the cast of suspects with how many clues point
at each one. Useful while writing a new case.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVar(&inspectFlags.scenarioPath, "scenario", "", "Path to a case YAML file (default: the embedded classic case)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := loadScenario(inspectFlags.scenarioPath)
	if err != nil {
		logger.Error("cannot load case", "path", inspectFlags.scenarioPath, "err", err)
		return err
	}

	return writeInspection(s, os.Stdout)
}

// writeInspection prints the case summary: header, room table in
// declaration order, suspect tallies.
func writeInspection(s *scenario.Scenario, out io.Writer) error {
	m, err := s.Mansion()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Case:     %s\n", s.Name)
	fmt.Fprintf(out, "Entrance: %s\n", m.Root().Name())
	fmt.Fprintf(out, "Rooms:    %d\n\n", m.RoomCount())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROOM\tLEFT\tRIGHT\tCLUE")
	for _, r := range s.Rooms {
		clue, _ := s.ClueAt(r.Name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, orDash(r.Left), orDash(r.Right), orDash(clue))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := make(map[string]int, len(s.Suspects))
	for _, suspect := range s.Suspects {
		counts[suspect]++
	}
	fmt.Fprintln(out, "\nSuspects:")
	sw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range s.SuspectNames() {
		fmt.Fprintf(sw, "  %s\t%d clue(s)\n", name, counts[name])
	}

	return sw.Flush()
}

// orDash substitutes "-" for an absent value in the room table.
func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
