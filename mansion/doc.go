// Package mansion models the floor plan of a mystery mansion as an
// immutable binary tree of named rooms.
//
// What
//
//   - Blueprint declares rooms by name with optional left/right children.
//   - Build validates the blueprint and freezes it into a Mansion; after
//     construction the layout never changes.
//   - Room exposes read-only accessors (Name, Left, Right, IsLeaf); child
//     pointers are never writable from outside the package.
//
// Why
//
//   - Exploration and judgment both assume a well-formed layout: exactly
//     one entrance, every room reachable, no room with two parents.
//     Build rejects malformed plans up front so the walkers never have
//     to re-validate.
//
// Validation
//
//	Build checks, in order:
//	  1. at least one room declared          → ErrNoRooms
//	  2. every name non-empty                → ErrEmptyRoomName
//	  3. names unique                        → ErrDuplicateRoom
//	  4. children reference declared rooms   → ErrUnknownChild
//	  5. no room is the child of two slots   → ErrSharedChild
//	  6. start names a declared room         → ErrStartMissing
//	  7. start has no parent                 → ErrStartNotRoot
//	  8. every room reachable from start     → ErrUnreachableRoom
//	An empty Blueprint.Start defaults to the first declared room.
//
// Complexity (n = rooms)
//
//   - Build: O(n) time and memory.
//   - Room lookup by name: O(1).
//
// Usage
//
//	m, err := mansion.Build(mansion.Blueprint{
//		Start: "Entrada",
//		Rooms: []mansion.RoomSpec{
//			{Name: "Entrada", Left: "Salão", Right: "Cozinha"},
//			{Name: "Salão"},
//			{Name: "Cozinha"},
//		},
//	})
//	if err != nil {
//		// malformed floor plan
//	}
//	hall := m.Root()              // Entrada
//	_ = hall.Left().Name()        // "Salão"
//	_ = hall.Left().IsLeaf()      // true
package mansion
