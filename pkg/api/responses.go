package api

type ChatResponse struct {
	Reply string `json:"reply"`
}

type SaveDiaryResponse struct {
	Success     bool    `json:"success"`
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	GeminiReply *string `json:"geminiReply"`
}

// DiaryEntry uses the stored column names as JSON keys, matching what
// diary pages already render.
type DiaryEntry struct {
	ID          uint    `json:"ID"`
	EntryDate   string  `json:"EntryDate"`
	EntryTime   string  `json:"EntryTime"`
	Content     string  `json:"Content"`
	EntryName   string  `json:"EntryName"`
	GeminiReply *string `json:"GeminiReply"`
}

type Professional struct {
	HPID         uint   `json:"HP_ID"`
	HPName       string `json:"HP_Name"`
	HPSpField    string `json:"HP_Sp_Field"`
	HPProfileURL string `json:"HP_Profile_URL"`
	WDTiming     string `json:"WD_Timing"`
	SDTiming     string `json:"SD_Timing"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}
