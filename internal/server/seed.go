package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
)

type seedRiddle struct {
	id      int
	q       string
	options []string
	correct int
	points  int
}

type seedRoom struct {
	id, name, desc string
	riddleID       int // 0 means no riddle (the treasure room)
	connections    []string
	isStart        bool
}

var seedRiddles = []seedRiddle{
	{1, "Что можно увидеть с закрытыми глазами?", []string{"Сны", "Темноту", "Звезды", "Будущее"}, 0, 100},
	{2, "Что становится влажным, когда сушит?", []string{"Вода", "Полотенце", "Ветер", "Солнце"}, 1, 150},
	{3, "Что идет, не двигаясь с места?", []string{"Облака", "Время", "Река", "Дорога"}, 1, 200},
	{4, "Чем больше из неё берёшь, тем больше она становится?", []string{"Яма", "Дыра", "Пустота", "Тень"}, 0, 250},
	{5, "Что может путешествовать по миру, оставаясь в углу?", []string{"Паук", "Пыль", "Марка", "Тень"}, 2, 300},
}

var seedRooms = []seedRoom{
	{"entrance", "Вход", "Тяжёлые ворота подземелья со скрипом открываются.", 1, []string{"hall", "armory"}, true},
	{"hall", "Зал", "Гулкий пустой зал, эхо шагов уходит в темноту.", 2, []string{"entrance", "library"}, false},
	{"armory", "Оружейная", "Ржавые доспехи выстроились вдоль стен.", 3, []string{"entrance", "dungeon"}, false},
	{"library", "Библиотека", "Полки истлевших книг до самого потолка.", 4, []string{"hall", "dungeon"}, false},
	{"dungeon", "Темница", "Сырые каменные стены и следы когтей.", 5, []string{"armory", "library", "treasure"}, false},
	{"treasure", "Сокровищница", "Сундук, полный золота. Конец пути.", 0, []string{"dungeon"}, false},
}

var seedLeaderboard = []LeaderboardEntry{
	{1, "Мастер", 1500, 5},
	{2, "Эксперт", 1200, 5},
	{3, "Профи", 1000, 4},
	{4, "Новичок", 750, 3},
	{5, "Игрок", 500, 2},
}

// SeedContent inserts the reference riddles, dungeon rooms, and
// leaderboard if the content tables are empty. Idempotent: does nothing
// once content exists.
func SeedContent(ctx context.Context, logger *slog.Logger, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM riddles`).Scan(&count); err != nil {
		return fmt.Errorf("counting riddles: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, r := range seedRiddles {
		options, err := json.Marshal(r.options)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO riddles (id, question, options, correct_answer, points)
			VALUES (?, ?, ?, ?, ?)
		`, r.id, r.q, string(options), r.correct, r.points); err != nil {
			return fmt.Errorf("seeding riddle %d: %w", r.id, err)
		}
	}

	for _, room := range seedRooms {
		connections, err := json.Marshal(room.connections)
		if err != nil {
			return err
		}
		riddleID := sql.NullInt64{Int64: int64(room.riddleID), Valid: room.riddleID != 0}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO rooms (id, name, description, riddle_id, connections, is_start)
			VALUES (?, ?, ?, ?, ?, ?)
		`, room.id, room.name, room.desc, riddleID, string(connections), room.isStart); err != nil {
			return fmt.Errorf("seeding room %q: %w", room.id, err)
		}
	}

	for _, e := range seedLeaderboard {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO leaderboard (position, name, score, level)
			VALUES (?, ?, ?, ?)
		`, e.Position, e.Name, e.Score, e.Level); err != nil {
			return fmt.Errorf("seeding leaderboard: %w", err)
		}
	}

	logger.Info("reference content seeded",
		"riddles", len(seedRiddles),
		"rooms", len(seedRooms),
	)
	return nil
}
