package api

import (
	"sanctomind-backend/internal/database"
	"sanctomind-backend/pkg/api"
)

func diaryEntryToAPI(e database.DiaryEntry) api.DiaryEntry {
	var reply *string
	if e.GeminiReply.Valid {
		reply = &e.GeminiReply.String
	}
	return api.DiaryEntry{
		ID:          e.ID,
		EntryDate:   e.EntryDate,
		EntryTime:   e.EntryTime,
		Content:     e.Content,
		EntryName:   e.EntryName,
		GeminiReply: reply,
	}
}

func professionalToAPI(p database.HealthProfessional) api.Professional {
	return api.Professional{
		HPID:         p.HPID,
		HPName:       p.HPName,
		HPSpField:    p.HPSpField,
		HPProfileURL: p.HPProfileURL,
		WDTiming:     p.WDTiming,
		SDTiming:     p.SDTiming,
	}
}
