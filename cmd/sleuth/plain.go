package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sleuth/evidence"
	"github.com/katalvlaran/sleuth/explore"
	"github.com/katalvlaran/sleuth/ledger"
	"github.com/katalvlaran/sleuth/mansion"
	"github.com/katalvlaran/sleuth/scenario"
	"github.com/katalvlaran/sleuth/verdict"
)

// runPlainSession plays one case as a line-oriented prompt loop.
// Narration goes to out; commands and the accusation are read from in.
// An empty line re-prompts silently; EOF ends the exploration like an
// explicit stop and, during judgment, aborts the accusation.
func runPlainSession(s *scenario.Scenario, in io.Reader, out io.Writer) error {
	m, err := s.Mansion()
	if err != nil {
		return err
	}
	ix, err := s.Index()
	if err != nil {
		return err
	}
	led := ledger.New()

	eng, err := explore.New(m, led, s.ClueAt,
		explore.WithOnEnter(func(r *mansion.Room) {
			fmt.Fprintf(out, "You are in: %s\n", r.Name())
		}),
		explore.WithOnClue(func(_ *mansion.Room, clue string, _ bool) {
			fmt.Fprintf(out, "\n> Clue found: %q\n", clue)
			fmt.Fprintln(out, "Noted in the detective's ledger.")
			fmt.Fprintln(out)
		}),
		explore.WithOnNoClue(func(*mansion.Room) {
			fmt.Fprintln(out, "No apparent clues in this room.")
			fmt.Fprintln(out)
		}),
		explore.WithOnBlocked(func(_ *mansion.Room, dir explore.Command) {
			side := "left"
			if dir == explore.Right {
				side = "right"
			}
			fmt.Fprintf(out, "There is no room to the %s.\n\n", side)
		}),
		explore.WithOnUnknown(func(*mansion.Room) {
			fmt.Fprintln(out, "Invalid option. Use e, d or s.")
			fmt.Fprintln(out)
		}),
		explore.WithOnStop(func(*mansion.Room) {
			fmt.Fprintln(out, "Leaving the exploration...")
		}),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n--- Detective Quest: the %q case ---\n", s.Name)
	eng.Start()

	sc := bufio.NewScanner(in)
	for !eng.Finished() {
		fmt.Fprint(out, "Choose: (e) left, (d) right, (s) end the exploration\n> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := eng.Step(explore.Stop); err != nil {
				return err
			}
			break
		}
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := eng.Step(explore.ParseCommand(line)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if err := runPlainJudgment(led, ix, sc, out); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nThanks for playing Detective Quest!")

	return nil
}

// runPlainJudgment replays the notebook, asks for the accused and
// prints the verdict. Mirrors the exploration loop's conventions:
// raw line, no trimming, EOF aborts quietly.
func runPlainJudgment(led *ledger.Ledger, ix *evidence.Index, sc *bufio.Scanner, out io.Writer) error {
	if led.Empty() {
		fmt.Fprintln(out, "No clues were collected. There are no grounds for an accusation.")
		return nil
	}

	fmt.Fprintln(out, "Clues collected:")
	led.Walk(func(clue string) {
		fmt.Fprintf(out, " - %s\n", clue)
	})

	fmt.Fprint(out, "\nName the suspect you wish to accuse: ")
	if !sc.Scan() {
		fmt.Fprintln(out)
		return sc.Err()
	}
	accused := sc.Text()

	res, err := verdict.Judge(led, ix, accused)
	switch {
	case errors.Is(err, verdict.ErrNoAccused):
		fmt.Fprintln(out, "No suspect named. The judgment is closed.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "\nYou accused: %s\n", res.Accused)
	fmt.Fprintf(out, "Clues pointing at %s: %d\n", res.Accused, res.Count)
	if res.Verdict == verdict.Valid {
		fmt.Fprintln(out, "VERDICT: The accusation holds! The evidence sustains the case.")
	} else {
		fmt.Fprintf(out, "VERDICT: Weak accusation. At least %d clues are needed to convict.\n", verdict.ConvictionThreshold)
	}

	return nil
}
