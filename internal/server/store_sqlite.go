package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pixelquest/riddlequest/internal/quest"
)

// SQLiteStore implements ContentStore over the content tables created
// by the migrations.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Riddles(ctx context.Context) ([]quest.Riddle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, options, correct_answer, points
		FROM riddles
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying riddles: %w", err)
	}
	defer rows.Close()

	var riddles []quest.Riddle
	for rows.Next() {
		var r quest.Riddle
		var options string
		if err := rows.Scan(&r.ID, &r.Question, &options, &r.CorrectAnswer, &r.Points); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(options), &r.Options); err != nil {
			return nil, fmt.Errorf("riddle %d: decoding options: %w", r.ID, err)
		}
		riddles = append(riddles, r)
	}
	return riddles, rows.Err()
}

func (s *SQLiteStore) Rooms(ctx context.Context) ([]quest.Room, string, error) {
	riddles, err := s.Riddles(ctx)
	if err != nil {
		return nil, "", err
	}
	byID := make(map[int]quest.Riddle, len(riddles))
	for _, r := range riddles {
		byID[r.ID] = r
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, riddle_id, connections, is_start
		FROM rooms
		ORDER BY rowid
	`)
	if err != nil {
		return nil, "", fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []quest.Room
	startID := ""
	for rows.Next() {
		var room quest.Room
		var riddleID sql.NullInt64
		var connections string
		var isStart bool
		if err := rows.Scan(&room.ID, &room.Name, &room.Description, &riddleID, &connections, &isStart); err != nil {
			return nil, "", err
		}
		if err := json.Unmarshal([]byte(connections), &room.Connections); err != nil {
			return nil, "", fmt.Errorf("room %q: decoding connections: %w", room.ID, err)
		}
		if riddleID.Valid {
			riddle, ok := byID[int(riddleID.Int64)]
			if !ok {
				return nil, "", fmt.Errorf("room %q: unknown riddle %d", room.ID, riddleID.Int64)
			}
			room.Riddle = &riddle
		}
		if isStart {
			if startID != "" {
				return nil, "", fmt.Errorf("rooms %q and %q both marked as start", startID, room.ID)
			}
			startID = room.ID
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	if len(rooms) > 0 && startID == "" {
		return nil, "", fmt.Errorf("no room marked as start")
	}
	return rooms, startID, nil
}

func (s *SQLiteStore) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, name, score, level
		FROM leaderboard
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Position, &e.Name, &e.Score, &e.Level); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
