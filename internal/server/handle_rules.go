package server

import "net/http"

type RuleItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type RulesResponse struct {
	Rules []RuleItem `json:"rules"`
	Tip   string     `json:"tip"`
}

// gameRules is the static rules text. Display content only.
var gameRules = []RuleItem{
	{Icon: "Target", Title: "ЦЕЛЬ", Text: "Отгадай все загадки и набери максимум очков"},
	{Icon: "Heart", Title: "ЖИЗНИ", Text: "У тебя есть 3 жизни. Неверный ответ = -1 жизнь"},
	{Icon: "Flame", Title: "СЕРИЯ", Text: "Отвечай правильно подряд для серии побед"},
	{Icon: "Trophy", Title: "ДОСТИЖЕНИЯ", Text: "Открывай новые достижения за особые успехи"},
}

func handleRules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RulesResponse{
			Rules: gameRules,
			Tip:   "СОВЕТ: ЗА КАЖДУЮ ЗАГАДКУ ДАЮТ РАЗНОЕ КОЛИЧЕСТВО ОЧКОВ",
		})
	}
}
