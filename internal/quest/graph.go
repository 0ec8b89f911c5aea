package quest

import "fmt"

// Graph is the static room map of the dungeon variant: undirected,
// small, with exactly one riddle-less treasure room. Connectivity is a
// content invariant checked at construction, not at play time.
type Graph struct {
	rooms    map[string]Room
	order    []string
	start    string
	treasure string
}

// NewGraph validates the room definitions and returns the graph.
// Requirements: unique ids, symmetric connections to known rooms,
// exactly one room without a riddle (the treasure), and every room,
// the treasure included, reachable from the start room.
func NewGraph(rooms []Room, startID string) (*Graph, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("graph must contain at least one room")
	}

	byID := make(map[string]Room, len(rooms))
	order := make([]string, 0, len(rooms))
	treasure := ""
	for _, room := range rooms {
		if room.ID == "" {
			return nil, fmt.Errorf("room with empty id")
		}
		if _, dup := byID[room.ID]; dup {
			return nil, fmt.Errorf("room %q: duplicate id", room.ID)
		}
		if room.Riddle == nil {
			if treasure != "" {
				return nil, fmt.Errorf("rooms %q and %q both lack a riddle; only the treasure room may", treasure, room.ID)
			}
			treasure = room.ID
		} else if err := validateRiddle(*room.Riddle); err != nil {
			return nil, fmt.Errorf("room %q: %w", room.ID, err)
		}
		byID[room.ID] = room
		order = append(order, room.ID)
	}

	if treasure == "" {
		return nil, fmt.Errorf("graph has no treasure room")
	}
	if _, ok := byID[startID]; !ok {
		return nil, fmt.Errorf("start room %q not found", startID)
	}
	if startID == treasure {
		return nil, fmt.Errorf("start room %q cannot be the treasure room", startID)
	}

	// Connections must point at known rooms and be symmetric.
	for _, room := range rooms {
		for _, conn := range room.Connections {
			other, ok := byID[conn]
			if !ok {
				return nil, fmt.Errorf("room %q: connection to unknown room %q", room.ID, conn)
			}
			if !contains(other.Connections, room.ID) {
				return nil, fmt.Errorf("rooms %q and %q: connection is not symmetric", room.ID, conn)
			}
		}
	}

	// Every room must be reachable from the start.
	reached := map[string]bool{startID: true}
	frontier := []string{startID}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		for _, conn := range byID[id].Connections {
			if !reached[conn] {
				reached[conn] = true
				frontier = append(frontier, conn)
			}
		}
	}
	if len(reached) != len(byID) {
		for _, id := range order {
			if !reached[id] {
				return nil, fmt.Errorf("room %q unreachable from start %q", id, startID)
			}
		}
	}

	return &Graph{rooms: byID, order: order, start: startID, treasure: treasure}, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Room returns the room with the given id.
func (g *Graph) Room(id string) (Room, bool) {
	r, ok := g.rooms[id]
	return r, ok
}

// Rooms returns all rooms in definition order.
func (g *Graph) Rooms() []Room {
	out := make([]Room, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.rooms[id])
	}
	return out
}

// Start is the id of the room a session begins in.
func (g *Graph) Start() string { return g.start }

// Treasure is the id of the riddle-less terminal room.
func (g *Graph) Treasure() string { return g.treasure }

// Connected reports whether rooms a and b share an edge.
func (g *Graph) Connected(a, b string) bool {
	room, ok := g.rooms[a]
	if !ok {
		return false
	}
	return contains(room.Connections, b)
}
