package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session stores the serialized view-controller state of one browser session
type Session struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	State     datatypes.JSON `json:"state"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"index"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}
