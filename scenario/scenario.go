// Package scenario defines the YAML case-file schema and its adapters
// onto the mansion, evidence and explore packages.
package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sleuth/evidence"
	"github.com/katalvlaran/sleuth/mansion"
)

// Sentinel errors for cross-field validation. Schema violations surface
// as validator errors; structural ones as mansion sentinels.
var (
	// ErrClueRoomUnknown is returned when a clue is assigned to a room
	// the scenario never declares.
	ErrClueRoomUnknown = errors.New("scenario: clue assigned to undeclared room")

	// ErrEmptyClue is returned when a clue text is empty.
	ErrEmptyClue = errors.New("scenario: empty clue text")

	// ErrEmptySuspect is returned when a suspect name is empty.
	ErrEmptySuspect = errors.New("scenario: empty suspect name")
)

// RoomSpec declares one room and its doors.
type RoomSpec struct {
	Name  string `yaml:"name" validate:"required"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

// Scenario is one complete case file.
//
// Clues maps room name → clue text; rooms without an entry are bare.
// Suspects maps clue text → suspect name; clues without an entry
// implicate nobody and never count toward a verdict.
type Scenario struct {
	Name     string            `yaml:"name" validate:"required"`
	Start    string            `yaml:"start,omitempty"`
	Rooms    []RoomSpec        `yaml:"rooms" validate:"required,min=1,dive"`
	Clues    map[string]string `yaml:"clues,omitempty"`
	Suspects map[string]string `yaml:"suspects,omitempty"`
}

// crossCheck enforces the relations the schema tags cannot express.
func (s *Scenario) crossCheck() error {
	declared := make(map[string]bool, len(s.Rooms))
	for _, r := range s.Rooms {
		declared[r.Name] = true
	}
	for room, clue := range s.Clues {
		if clue == "" {
			return fmt.Errorf("%w: room %q", ErrEmptyClue, room)
		}
		if !declared[room] {
			return fmt.Errorf("%w: %q", ErrClueRoomUnknown, room)
		}
	}
	for clue, suspect := range s.Suspects {
		if clue == "" {
			return fmt.Errorf("%w: suspect %q keyed by empty clue", ErrEmptyClue, suspect)
		}
		if suspect == "" {
			return fmt.Errorf("%w: clue %q", ErrEmptySuspect, clue)
		}
	}

	return nil
}

// Mansion builds the validated room tree for this scenario.
func (s *Scenario) Mansion() (*mansion.Mansion, error) {
	rooms := make([]mansion.RoomSpec, len(s.Rooms))
	for i, r := range s.Rooms {
		rooms[i] = mansion.RoomSpec{Name: r.Name, Left: r.Left, Right: r.Right}
	}

	return mansion.Build(mansion.Blueprint{Start: s.Start, Rooms: rooms})
}

// Index builds the evidence table and bulk-loads every clue → suspect
// association. Options pass through to evidence.NewIndex.
func (s *Scenario) Index(opts ...evidence.Option) (*evidence.Index, error) {
	ix, err := evidence.NewIndex(opts...)
	if err != nil {
		return nil, err
	}
	for clue, suspect := range s.Suspects {
		ix.Put(clue, suspect)
	}

	return ix, nil
}

// ClueAt reports the clue waiting in room, if any. The method value
// satisfies explore.ClueFunc.
func (s *Scenario) ClueAt(room string) (string, bool) {
	clue, ok := s.Clues[room]

	return clue, ok
}

// SuspectNames returns the distinct suspect names, sorted.
func (s *Scenario) SuspectNames() []string {
	seen := make(map[string]bool, len(s.Suspects))
	for _, suspect := range s.Suspects {
		seen[suspect] = true
	}
	names := make([]string, 0, len(seen))
	for suspect := range seen {
		names = append(names, suspect)
	}
	sort.Strings(names)

	return names
}

// RoomCount reports the number of declared rooms.
func (s *Scenario) RoomCount() int { return len(s.Rooms) }
