package pipes

import "github.com/charmbracelet/log"

// KindID identifies a pipe kind in the catalog.
type KindID uint8

const (
	Empty KindID = iota // no pipe; not placeable by the player
	Start               // the single flow source; placed by the board setup
	Straight
	Elbow
	Cross
)

// String returns the catalog name of the kind.
func (k KindID) String() string {
	if def, ok := Lookup(k); ok {
		return def.Name
	}
	return "unknown"
}

// FlowStrategy governs how a kind picks an exit direction during a flow.
type FlowStrategy uint8

const (
	// StrategyNone marks non-traversable kinds.
	StrategyNone FlowStrategy = iota
	// StrategyFirstPort always exits through the first rotated port (start tile).
	StrategyFirstPort
	// StrategyStraightThrough prefers the direction opposite the entry (cross tile).
	StrategyStraightThrough
	// StrategyAnyAvailable exits through the first unused port that is not the entry.
	StrategyAnyAvailable
)

// Kind is an immutable pipe catalog entry.
type Kind struct {
	ID           KindID
	Name         string
	BasePorts    []Direction // ports at rotation 0, in resolution order
	Randomizable bool        // whether the pipe queue may generate it
	MaxVisits    int         // traversal credits per tile instance per flow; 0 = never scores
	Strategy     FlowStrategy
}

// catalog holds every defined pipe kind, indexed by KindID.
var catalog = [...]Kind{
	Empty:    {ID: Empty, Name: "empty", BasePorts: nil, Randomizable: false, MaxVisits: 0, Strategy: StrategyNone},
	Start:    {ID: Start, Name: "start", BasePorts: []Direction{DirRight}, Randomizable: false, MaxVisits: 0, Strategy: StrategyFirstPort},
	Straight: {ID: Straight, Name: "straight", BasePorts: []Direction{DirLeft, DirRight}, Randomizable: true, MaxVisits: 1, Strategy: StrategyAnyAvailable},
	Elbow:    {ID: Elbow, Name: "elbow", BasePorts: []Direction{DirTop, DirRight}, Randomizable: true, MaxVisits: 1, Strategy: StrategyAnyAvailable},
	Cross:    {ID: Cross, Name: "cross", BasePorts: []Direction{DirTop, DirRight, DirBottom, DirLeft}, Randomizable: true, MaxVisits: 2, Strategy: StrategyStraightThrough},
}

// Lookup returns the catalog entry for a kind.
func Lookup(id KindID) (Kind, bool) {
	if int(id) >= len(catalog) {
		return Kind{}, false
	}
	return catalog[id], true
}

// RandomizableKinds returns the kinds the pipe queue may draw, in catalog order.
func RandomizableKinds() []KindID {
	ids := make([]KindID, 0, len(catalog))
	for _, k := range catalog {
		if k.Randomizable {
			ids = append(ids, k.ID)
		}
	}
	return ids
}

// Ports resolves a kind's world-facing connection directions at the given
// rotation. The result preserves base-port order; callers rely on that
// ordering as the tie-break for first-available exit selection.
// Kinds with no defined ports yield nil, which is logged rather than raised
// so a malformed tile cannot crash an in-progress traversal.
func Ports(id KindID, r Rotation) []Direction {
	def, ok := Lookup(id)
	if !ok || len(def.BasePorts) == 0 {
		log.Warn("pipes: kind has no ports", "kind", id)
		return nil
	}
	ports := make([]Direction, len(def.BasePorts))
	for i, p := range def.BasePorts {
		ports[i] = p.Rotated(r)
	}
	return ports
}

// hasPort reports whether d appears in ports.
func hasPort(ports []Direction, d Direction) bool {
	for _, p := range ports {
		if p == d {
			return true
		}
	}
	return false
}
