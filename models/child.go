package models

type Child struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"not null"`
	Age       int    `json:"age"`
	Weight    string `json:"weight"`
	Image     string `json:"image"`
	UserID    uint   `json:"user_id" gorm:"index;not null"` // FK → users.id
}

func (Child) TableName() string {
	return "children"
}
