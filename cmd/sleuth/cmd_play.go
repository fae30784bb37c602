package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sleuth/scenario"
)

var playFlags struct {
	scenarioPath string
	plain        bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore the mansion and accuse a suspect",
	Long: `Play one case: wander the mansion room by room, gather the clues
left behind, then name the suspect the evidence points at. Two
corroborating clues sustain an accusation.

On a terminal the game runs as a full-screen session; piped input
(or --plain) falls back to a line-by-line prompt loop:

  printf 'e\ns\nSr. Verde\n' | sleuth play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&playFlags.scenarioPath, "scenario", "", "Path to a case YAML file (default: the embedded classic case)")
	f.BoolVar(&playFlags.plain, "plain", false, "Force line mode even on a terminal")
}

// loadScenario resolves the --scenario flag: a path when given, the
// embedded classic case otherwise.
func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}

	return scenario.LoadFile(path)
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, err := loadScenario(playFlags.scenarioPath)
	if err != nil {
		logger.Error("cannot load case", "path", playFlags.scenarioPath, "err", err)
		return err
	}
	logger.Info("case loaded", "name", s.Name, "rooms", s.RoomCount())

	if playFlags.plain || !stdinIsTerminal() {
		return runPlainSession(s, os.Stdin, os.Stdout)
	}

	return runTUISession(s)
}

// stdinIsTerminal reports whether stdin is attached to a terminal;
// piped input and CI runs get the plain prompt loop.
func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
