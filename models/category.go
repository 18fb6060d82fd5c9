package models

// Category groups projects by kind of work.
type Category struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	Icon     string    `json:"icon" gorm:"type:varchar(50)"`
	Projects []Project `json:"-" gorm:"foreignKey:CategoryID"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (c Category) Response() CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon}
}
