package intake

import "time"

// Application is one insurance-intake submission. Rows are insert-only:
// nothing in the API updates or deletes them.
type Application struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	Phone              string    `gorm:"not null" json:"phone"`
	Email              string    `gorm:"not null" json:"email"`
	VehicleType        string    `gorm:"not null" json:"vehicle_type"`
	Make               string    `gorm:"not null" json:"make"`
	Model              string    `gorm:"not null" json:"model"`
	Year               string    `gorm:"not null" json:"year"`
	RegistrationNumber *string   `json:"registration_number"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Application) TableName() string { return "insure.applications" }
