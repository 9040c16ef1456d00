package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"sanctomind-backend/internal/database"
	"sanctomind-backend/pkg/api"
)

func (s *BackendService) ListProfessionals(r *http.Request) (any, error) {
	var rows []database.HealthProfessional
	if err := s.db.WithContext(r.Context()).Find(&rows).Error; err != nil {
		slog.Error("error querying professionals", "error", err)
		return nil, CodedFieldErrorf(http.StatusInternalServerError, "error", "Database query failed")
	}

	out := make([]api.Professional, len(rows))
	for i, p := range rows {
		out[i] = professionalToAPI(p)
	}
	return out, nil
}

func (s *BackendService) SaveDiaryEntry(r *http.Request) (any, error) {
	req, err := ParseRequest[api.SaveDiaryRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Content == "" || req.Title == "" {
		return nil, CodedFieldErrorf(http.StatusBadRequest, "error", "Content and title required")
	}

	// Entries are stamped server-side at save time.
	now := time.Now()
	entry := database.DiaryEntry{
		EntryDate: now.Format("2006-01-02"),
		EntryTime: now.Format("15:04:05"),
		Content:   req.Content,
		EntryName: req.Title,
		GeminiReply: sql.NullString{
			String: req.GeminiReply,
			Valid:  req.GeminiReply != "",
		},
	}

	if err := s.db.WithContext(r.Context()).Create(&entry).Error; err != nil {
		slog.Error("error saving diary entry", "error", err)
		return nil, CodedFieldErrorf(http.StatusInternalServerError, "error", "Failed to save diary entry")
	}

	var reply *string
	if entry.GeminiReply.Valid {
		reply = &entry.GeminiReply.String
	}

	return api.SaveDiaryResponse{
		Success:     true,
		ID:          entry.ID,
		Date:        entry.EntryDate,
		Time:        entry.EntryTime,
		Title:       entry.EntryName,
		Content:     entry.Content,
		GeminiReply: reply,
	}, nil
}

// ListDiaryEntries returns entries newest first. Optional limit/offset
// query params page the result; without them all entries are returned.
func (s *BackendService) ListDiaryEntries(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.ListDiaryParams](r)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(r.Context()).Order(`"ID" DESC`)
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	var rows []database.DiaryEntry
	if err := query.Find(&rows).Error; err != nil {
		slog.Error("error fetching diary entries", "error", err)
		return nil, CodedFieldErrorf(http.StatusInternalServerError, "error", "Failed to fetch diary entries")
	}

	out := make([]api.DiaryEntry, len(rows))
	for i, e := range rows {
		out[i] = diaryEntryToAPI(e)
	}
	return out, nil
}
