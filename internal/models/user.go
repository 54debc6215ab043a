package models

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100;not null" json:"last_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:100;not null" json:"-"` // bcrypt, never the raw password
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}
