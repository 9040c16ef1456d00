package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"sanctomind-backend/internal/gemini"
)

type BackendService struct {
	db  *gorm.DB
	llm gemini.Completer
	raw gemini.RawGenerator
}

func NewBackendService(db *gorm.DB, llm gemini.Completer, raw gemini.RawGenerator) *BackendService {
	return &BackendService{db: db, llm: llm, raw: raw}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", RestHandler(s.Chat))
		r.Post("/general-chat", RestHandler(s.GeneralChat))
		r.Post("/specialised-chat", RestHandler(s.SpecialisedChat))
		r.Post("/quiz", RestHandler(s.Quiz))
		r.Post("/checklist-response", RestHandler(s.ChecklistResponse))

		r.Get("/professionals", RestHandler(s.ListProfessionals))
		r.Post("/diary", RestHandler(s.SaveDiaryEntry))
		r.Get("/diary", RestHandler(s.ListDiaryEntries))

		r.Post("/create-account", RestHandler(s.CreateAccount))
		r.Post("/login", RestHandler(s.Login))
	})

	r.Post("/generate", RestHandler(s.Generate))
}

// upstreamError translates the adapter's tagged error into the response
// contract of the calling route: 503 and 429 carry fixed retry guidance,
// anything else collapses to the route's own safe 500 message. The field
// is the JSON key the route reports errors under.
func upstreamError(err error, field, genericMessage string) error {
	var uerr *gemini.UpstreamError
	if errors.As(err, &uerr) {
		switch uerr.Kind {
		case gemini.KindUnavailable:
			return CodedFieldErrorf(http.StatusServiceUnavailable, field, "Gemini servers are busy, please try again later.")
		case gemini.KindRateLimited:
			return CodedFieldErrorf(http.StatusTooManyRequests, field, "Rate limit exceeded. Try again after %s.", uerr.RetryDelay)
		}
	}
	slog.Error("model request failed", "error", err)
	return CodedFieldErrorf(http.StatusInternalServerError, field, "%s", genericMessage)
}
