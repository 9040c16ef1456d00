package api

import "encoding/json"

type ChatRequest struct {
	Message string `json:"message"`
}

type SpecialisedChatRequest struct {
	Disorder string `json:"disorder"`
	Message  string `json:"message"`
}

type SaveDiaryRequest struct {
	Content     string `json:"content"`
	Title       string `json:"title"`
	GeminiReply string `json:"geminiReply"`
}

// ListDiaryParams are optional query parameters on the diary listing.
// Zero values mean "no paging".
type ListDiaryParams struct {
	Limit  int `schema:"limit"`
	Offset int `schema:"offset"`
}

// QuizRequest drives both quiz modes: Answers absent means "generate
// questions", present means "evaluate these answers".
type QuizRequest struct {
	Type     string          `json:"type"`
	Disorder string          `json:"disorder"`
	Answers  json.RawMessage `json:"answers,omitempty"`
}

type CreateAccountRequest struct {
	Username   string `json:"username"`
	EmailPhone string `json:"emailPhone"`
	Password   string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChecklistTask struct {
	Text string `json:"text,omitempty"`
	Done bool   `json:"done"`
}

type ChecklistRequest struct {
	Disorder string          `json:"disorder"`
	Type     string          `json:"type"`
	Tasks    []ChecklistTask `json:"tasks,omitempty"`
}
