package database

import "database/sql"

// Column names follow the existing SanctoMind schema so the service can
// run against a database provisioned before this rewrite.

type User struct {
	UserID       uint   `gorm:"column:UserID;primaryKey;autoIncrement"`
	Username     string `gorm:"column:Username;size:100;uniqueIndex;not null"`
	EmailPhone   string `gorm:"column:EmailPhone;size:150"`
	PasswordHash string `gorm:"column:PasswordHash;size:255"`
}

func (User) TableName() string { return "Users" }

type DiaryEntry struct {
	ID          uint           `gorm:"column:ID;primaryKey;autoIncrement"`
	EntryDate   string         `gorm:"column:EntryDate;size:10"`
	EntryTime   string         `gorm:"column:EntryTime;size:8"`
	Content     string         `gorm:"column:Content"`
	EntryName   string         `gorm:"column:EntryName;size:255"`
	GeminiReply sql.NullString `gorm:"column:GeminiReply"`
}

func (DiaryEntry) TableName() string { return "DiaryEntries" }

// HealthProfessional is read-only reference data, populated out of band.
// Nothing in this service writes to it.
type HealthProfessional struct {
	HPID         uint   `gorm:"column:HP_ID;primaryKey"`
	HPName       string `gorm:"column:HP_Name;size:255"`
	HPSpField    string `gorm:"column:HP_Sp_Field;size:255"`
	HPProfileURL string `gorm:"column:HP_Profile_URL;size:512"`
	WDTiming     string `gorm:"column:WD_Timing;size:100"`
	SDTiming     string `gorm:"column:SD_Timing;size:100"`
}

func (HealthProfessional) TableName() string { return "HP_Table" }
