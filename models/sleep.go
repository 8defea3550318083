package models

import "time"

// Sleep is one sleep session for a child.
type Sleep struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Date          time.Time `json:"date"`
	Duration      string    `json:"duration" gorm:"not null"`
	SleepType     string    `json:"sleep_type" gorm:"not null"`     // "calm"|"restless"|"crying"
	SleepCategory string    `json:"sleep_category" gorm:"not null"` // "nap"|"bedtime"
	Notes         string    `json:"notes"`
	ChildID       uint      `json:"child_id" gorm:"index;not null"` // FK → children.id
}

func (Sleep) TableName() string {
	return "sleeping"
}
