package models

// Experience is a work history entry. Dates are stored as the display strings
// the frontend submits (e.g. "2023-04" or "Jan 2023").
type Experience struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"type:varchar(100);not null"`
	Company     string `json:"company" gorm:"type:varchar(100);not null"`
	Location    string `json:"location" gorm:"type:varchar(100)"`
	StartDate   string `json:"start_date" gorm:"type:varchar(20)"`
	EndDate     string `json:"end_date" gorm:"type:varchar(20)"`
	Description string `json:"description" gorm:"type:text"`
	Current     bool   `json:"current" gorm:"not null;default:false"`
}

type ExperienceResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// Response renders the entry for the API. An ongoing position always reads
// "Present" regardless of whatever end date is stored.
func (e Experience) Response() ExperienceResponse {
	endDate := e.EndDate
	if e.Current {
		endDate = "Present"
	}

	return ExperienceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Company:     e.Company,
		Location:    e.Location,
		StartDate:   e.StartDate,
		EndDate:     endDate,
		Description: e.Description,
		Current:     e.Current,
	}
}
