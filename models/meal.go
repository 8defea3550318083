package models

import "time"

// Meal is one feeding session for a child.
type Meal struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Date     time.Time `json:"date"`
	Duration string    `json:"duration" gorm:"not null"` // e.g. "00:25:22"
	FoodType string    `json:"food_type" gorm:"not null"` // "bottle"|"breast_fed"|"formula"
	SideFed  string    `json:"side_fed"`
	Notes    string    `json:"notes"`
	ChildID  uint      `json:"child_id" gorm:"index;not null"` // FK → children.id
}

func (Meal) TableName() string {
	return "eating"
}
