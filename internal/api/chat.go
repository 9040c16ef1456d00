package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"sanctomind-backend/internal/prompt"
	"sanctomind-backend/pkg/api"
)

// Chat is the generic single-turn completion: the message goes to the
// model as-is, no validation beyond body parsing (matching the original
// contract of this route).
func (s *BackendService) Chat(r *http.Request) (any, error) {
	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		return nil, err
	}

	reply, err := s.llm.Generate(r.Context(), req.Message)
	if err != nil {
		return nil, upstreamError(err, "reply", "Sorry, something went wrong on the server.")
	}

	return api.ChatResponse{Reply: reply}, nil
}

func (s *BackendService) GeneralChat(r *http.Request) (any, error) {
	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Message == "" {
		return nil, CodedFieldErrorf(http.StatusBadRequest, "reply", "Message cannot be empty.")
	}

	reply, err := s.llm.Generate(r.Context(), prompt.GeneralCounseling(req.Message))
	if err != nil {
		return nil, upstreamError(err, "reply", "Something went wrong on the server.")
	}

	return api.ChatResponse{Reply: reply}, nil
}

func (s *BackendService) SpecialisedChat(r *http.Request) (any, error) {
	req, err := ParseRequest[api.SpecialisedChatRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Disorder == "" || req.Message == "" {
		return nil, CodedFieldErrorf(http.StatusBadRequest, "reply", "Disorder and message are required.")
	}

	reply, err := s.llm.Generate(r.Context(), prompt.SpecialisedCounseling(req.Disorder, req.Message))
	if err != nil {
		return nil, upstreamError(err, "reply", "Sorry, something went wrong on the server.")
	}

	return api.ChatResponse{Reply: reply}, nil
}

// Quiz serves both quiz modes: without answers it asks the model for
// questions, with answers it asks for an evaluation in the fixed
// score/recommendation/conditions format.
func (s *BackendService) Quiz(r *http.Request) (any, error) {
	req, err := ParseRequest[api.QuizRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Type == "" || req.Disorder == "" {
		return nil, CodedFieldErrorf(http.StatusBadRequest, "reply", "Type and disorder are required.")
	}

	var p string
	if hasAnswers(req.Answers) {
		p = prompt.QuizEvaluation(req.Type, req.Disorder, req.Answers)
	} else {
		p = prompt.QuizQuestions(req.Type, req.Disorder)
	}

	reply, err := s.llm.Generate(r.Context(), p)
	if err != nil {
		return nil, upstreamError(err, "reply", "Failed to generate quiz.")
	}

	return api.ChatResponse{Reply: reply}, nil
}

func hasAnswers(answers json.RawMessage) bool {
	trimmed := bytes.TrimSpace(answers)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func (s *BackendService) ChecklistResponse(r *http.Request) (any, error) {
	req, err := ParseRequest[api.ChecklistRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Disorder == "" {
		return nil, CodedFieldErrorf(http.StatusBadRequest, "error", "Disorder is required")
	}

	var p string
	switch req.Type {
	case "checklist":
		p = prompt.Checklist(req.Disorder)
	case "remarks":
		if len(req.Tasks) == 0 {
			return nil, CodedFieldErrorf(http.StatusBadRequest, "error", "Tasks are required for remarks")
		}
		completed := 0
		for _, t := range req.Tasks {
			if t.Done {
				completed++
			}
		}
		p = prompt.ChecklistRemarks(req.Disorder, completed, len(req.Tasks))
	default:
		return nil, CodedFieldErrorf(http.StatusBadRequest, "error", "Invalid type")
	}

	text, err := s.llm.Generate(r.Context(), p)
	if err != nil {
		return nil, upstreamError(err, "error", "Failed to generate checklist or remarks")
	}

	return api.MessageResponse{Message: text}, nil
}

// Generate forwards the request body to the model API unchanged and
// returns whatever it answers. The body shape belongs to the caller.
func (s *BackendService) Generate(r *http.Request) (any, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("error reading request body", "error", err)
		return nil, CodedFieldErrorf(http.StatusBadRequest, "error", "unable to read request body")
	}

	res, err := s.raw.GenerateRaw(r.Context(), body)
	if err != nil {
		return nil, upstreamError(err, "error", "Internal Server Error")
	}

	return res, nil
}
