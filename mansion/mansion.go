package mansion

import (
	"fmt"
	"sort"
)

// Mansion is a validated, immutable room tree.
//
// Mansion is safe for concurrent readers; it has no mutating methods.
type Mansion struct {
	start *Room
	rooms map[string]*Room
}

// Build validates bp and freezes it into a Mansion.
// See the package documentation for the validation order; every failure
// wraps one of the package sentinels and names the offending room.
func Build(bp Blueprint) (*Mansion, error) {
	// 1) Require at least one declared room.
	if len(bp.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	// 2) Register rooms: names must be present and unique.
	rooms := make(map[string]*Room, len(bp.Rooms))
	for i, spec := range bp.Rooms {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: room #%d", ErrEmptyRoomName, i)
		}
		if _, dup := rooms[spec.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoom, spec.Name)
		}
		rooms[spec.Name] = &Room{name: spec.Name}
	}

	// 3) Wire doors; track parent claims so no room serves two slots.
	claimed := make(map[string]string, len(bp.Rooms)) // child → parent
	link := func(parent *Room, childName string, attach func(*Room)) error {
		if childName == "" {
			return nil
		}
		child, ok := rooms[childName]
		if !ok {
			return fmt.Errorf("%w: %q → %q", ErrUnknownChild, parent.name, childName)
		}
		if prev, taken := claimed[childName]; taken {
			return fmt.Errorf("%w: %q claimed by %q and %q", ErrSharedChild, childName, prev, parent.name)
		}
		claimed[childName] = parent.name
		attach(child)

		return nil
	}
	for _, spec := range bp.Rooms {
		parent := rooms[spec.Name]
		if err := link(parent, spec.Left, func(c *Room) { parent.left = c }); err != nil {
			return nil, err
		}
		if err := link(parent, spec.Right, func(c *Room) { parent.right = c }); err != nil {
			return nil, err
		}
	}

	// 4) Resolve the entrance: explicit Start or the first declared room.
	startName := bp.Start
	if startName == "" {
		startName = bp.Rooms[0].Name
	}
	start, ok := rooms[startName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartMissing, startName)
	}
	if parent, isChild := claimed[startName]; isChild {
		return nil, fmt.Errorf("%w: %q is behind a door of %q", ErrStartNotRoot, startName, parent)
	}

	// 5) Every declared room must be reachable from the entrance.
	reached := make(map[string]bool, len(rooms))
	var descend func(*Room)
	descend = func(r *Room) {
		if r == nil || reached[r.name] {
			return
		}
		reached[r.name] = true
		descend(r.left)
		descend(r.right)
	}
	descend(start)
	if len(reached) != len(rooms) {
		for _, spec := range bp.Rooms {
			if !reached[spec.Name] {
				return nil, fmt.Errorf("%w: %q", ErrUnreachableRoom, spec.Name)
			}
		}
	}

	return &Mansion{start: start, rooms: rooms}, nil
}

// Root returns the entrance room.
func (m *Mansion) Root() *Room { return m.start }

// Room looks a room up by name.
func (m *Mansion) Room(name string) (*Room, bool) {
	r, ok := m.rooms[name]

	return r, ok
}

// RoomCount reports the number of rooms in the mansion.
func (m *Mansion) RoomCount() int { return len(m.rooms) }

// Names returns every room name in lexicographic order.
func (m *Mansion) Names() []string {
	names := make([]string, 0, len(m.rooms))
	for name := range m.rooms {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
