package models

// Skill is a named proficiency shown on the portfolio, level 0-100.
type Skill struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(100);not null"`
	Level    int    `json:"level" gorm:"not null;default:50"`
	Icon     string `json:"icon" gorm:"type:varchar(50)"`
	Category string `json:"category" gorm:"type:varchar(50)"`
}
