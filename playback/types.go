package playback

import (
	"errors"
	"fmt"

	"github.com/thalath/gridpath/grid"
)

// ErrUnknownKind is returned when decoding an unrecognised event kind.
var ErrUnknownKind = errors.New("playback: unknown event kind")

// Kind tells which phase of the replay an event belongs to.
type Kind uint8

const (
	// Visited events replay the search's visitation order.
	Visited Kind = iota
	// Path events replay the reconstructed path.
	Path
)

// String returns "visited" or "path".
func (k Kind) String() string {
	switch k {
	case Visited:
		return "visited"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "visited":
		*k = Visited
	case "path":
		*k = Path
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, text)
	}
	return nil
}

// Mark maps the event kind onto the grid's transient mark layer.
func (k Kind) Mark() grid.Mark {
	if k == Path {
		return grid.MarkPath
	}
	return grid.MarkVisited
}

// Event is one reveal step. Step starts at 1 and increases by one per event
// across both phases.
type Event struct {
	Kind  Kind       `json:"kind"`
	Coord grid.Coord `json:"coord"`
	Step  int        `json:"step"`
}

// String renders the event as "#step kind (row,col)".
func (e Event) String() string {
	return fmt.Sprintf("#%d %s %s", e.Step, e.Kind, e.Coord)
}
