package server

import "github.com/pixelquest/riddlequest/internal/quest"

// achievementIcons maps achievement ids to display icons. Presentation
// metadata stays out of the game core on purpose.
var achievementIcons = map[string]string{
	quest.AchievementFirst:    "Star",
	quest.AchievementStreak3:  "Flame",
	quest.AchievementComplete: "Trophy",
	quest.AchievementPerfect:  "Award",
}

// RiddleView is the riddle as shown to the player. The correct answer
// index never leaves the server.
type RiddleView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Points   int      `json:"points"`
}

type AchievementView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Icon        string `json:"icon"`
}

type RoomView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Connections []string `json:"connections"`
	HasRiddle   bool     `json:"hasRiddle"`
	Solved      bool     `json:"solved"`
	Visited     bool     `json:"visited"`
}

// StateResponse is the full session snapshot for the presentation layer.
type StateResponse struct {
	Mode   quest.Mode   `json:"mode"`
	Screen quest.Screen `json:"screen"`

	CurrentIndex  int        `json:"currentIndex"`
	TotalRiddles  int        `json:"totalRiddles"`
	CurrentRoomID string     `json:"currentRoomId,omitempty"`
	Rooms         []RoomView `json:"rooms,omitempty"`

	CurrentRiddle *RiddleView `json:"currentRiddle,omitempty"`

	Score      int  `json:"score"`
	Lives      int  `json:"lives"`
	Streak     int  `json:"streak"`
	PerfectRun bool `json:"perfectRun"`

	PendingAnswer     *int  `json:"pendingAnswer,omitempty"`
	AwaitingAdvance   bool  `json:"awaitingAdvance"`
	LastAnswerCorrect *bool `json:"lastAnswerCorrect,omitempty"`

	GameOver bool `json:"gameOver"`
	Victory  bool `json:"victory"`

	Achievements []AchievementView `json:"achievements"`
}

func stateResponse(snap quest.Snapshot) StateResponse {
	resp := StateResponse{
		Mode:              snap.Mode,
		Screen:            snap.Screen,
		CurrentIndex:      snap.CurrentIndex,
		TotalRiddles:      snap.TotalRiddles,
		CurrentRoomID:     snap.CurrentRoomID,
		Score:             snap.Score,
		Lives:             snap.Lives,
		Streak:            snap.Streak,
		PerfectRun:        snap.PerfectRun,
		PendingAnswer:     snap.PendingAnswer,
		AwaitingAdvance:   snap.AwaitingAdvance,
		LastAnswerCorrect: snap.LastAnswerCorrect,
		GameOver:          snap.GameOver,
		Victory:           snap.Victory,
	}

	if snap.CurrentRiddle != nil {
		resp.CurrentRiddle = &RiddleView{
			ID:       snap.CurrentRiddle.ID,
			Question: snap.CurrentRiddle.Question,
			Options:  snap.CurrentRiddle.Options,
			Points:   snap.CurrentRiddle.Points,
		}
	}

	for _, rs := range snap.Rooms {
		resp.Rooms = append(resp.Rooms, RoomView{
			ID:          rs.Room.ID,
			Name:        rs.Room.Name,
			Description: rs.Room.Description,
			Connections: rs.Room.Connections,
			HasRiddle:   rs.Room.Riddle != nil,
			Solved:      rs.Solved,
			Visited:     rs.Visited,
		})
	}

	resp.Achievements = make([]AchievementView, len(snap.Achievements))
	for i, a := range snap.Achievements {
		resp.Achievements[i] = AchievementView{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    a.Unlocked,
			Icon:        achievementIcons[a.ID],
		}
	}

	return resp
}
