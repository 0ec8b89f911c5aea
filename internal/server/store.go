package server

import (
	"context"
	"errors"

	"github.com/pixelquest/riddlequest/internal/quest"
)

var ErrNotFound = errors.New("not found")

// LeaderboardEntry is one row of the static leaderboard. Display-only:
// the game core never writes to it.
type LeaderboardEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Level    int    `json:"level"`
}

// ContentStore supplies the static game configuration: the riddle
// catalog, the dungeon graph, and the leaderboard table.
type ContentStore interface {
	Riddles(ctx context.Context) ([]quest.Riddle, error)
	Rooms(ctx context.Context) (rooms []quest.Room, startID string, err error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

// Content is the validated static configuration loaded once at startup.
type Content struct {
	Catalog *quest.Catalog
	Graph   *quest.Graph
}

// LoadContent reads the riddles and rooms from the store and builds the
// validated catalog and graph. A malformed definition is a content bug
// and fails startup.
func LoadContent(ctx context.Context, store ContentStore) (*Content, error) {
	riddles, err := store.Riddles(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := quest.NewCatalog(riddles)
	if err != nil {
		return nil, err
	}

	rooms, startID, err := store.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	graph, err := quest.NewGraph(rooms, startID)
	if err != nil {
		return nil, err
	}

	return &Content{Catalog: catalog, Graph: graph}, nil
}
