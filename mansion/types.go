// Package mansion provides blueprint types and error definitions for
// building room-layout trees.
package mansion

import "errors"

// Sentinel errors for Build validation.
var (
	// ErrNoRooms is returned when the blueprint declares no rooms at all.
	ErrNoRooms = errors.New("mansion: blueprint declares no rooms")

	// ErrEmptyRoomName is returned when a room is declared without a name.
	ErrEmptyRoomName = errors.New("mansion: room name is empty")

	// ErrDuplicateRoom is returned when two rooms share a name.
	ErrDuplicateRoom = errors.New("mansion: duplicate room name")

	// ErrUnknownChild is returned when a child references an undeclared room.
	ErrUnknownChild = errors.New("mansion: child references unknown room")

	// ErrSharedChild is returned when a room is claimed by two parent slots.
	ErrSharedChild = errors.New("mansion: room claimed by two parents")

	// ErrStartMissing is returned when Start names an undeclared room.
	ErrStartMissing = errors.New("mansion: start room not declared")

	// ErrStartNotRoot is returned when the start room is itself a child.
	ErrStartNotRoot = errors.New("mansion: start room has a parent")

	// ErrUnreachableRoom is returned when a declared room cannot be reached
	// from the start room.
	ErrUnreachableRoom = errors.New("mansion: room unreachable from start")
)

// RoomSpec declares one room of a Blueprint. Left and Right name the
// rooms behind the two doors; an empty string means no door on that side.
type RoomSpec struct {
	Name  string
	Left  string
	Right string
}

// Blueprint is the declarative floor plan consumed by Build.
// Start names the entrance; when empty, the first declared room is used.
type Blueprint struct {
	Start string
	Rooms []RoomSpec
}

// Room is one node of a built Mansion. Rooms are created only by Build
// and are immutable afterwards.
type Room struct {
	name  string
	left  *Room
	right *Room
}

// Name returns the room's display name.
func (r *Room) Name() string { return r.name }

// Left returns the room behind the left door, or nil if there is none.
func (r *Room) Left() *Room { return r.left }

// Right returns the room behind the right door, or nil if there is none.
func (r *Room) Right() *Room { return r.right }

// IsLeaf reports whether the room has no doors at all.
func (r *Room) IsLeaf() bool { return r.left == nil && r.right == nil }
