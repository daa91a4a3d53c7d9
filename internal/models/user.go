package models

// User is a registered account. Only the bcrypt hash of the password is stored.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"uniqueIndex;not null" example:"jane@example.com"`
	PasswordHash []byte `json:"-" gorm:"not null"`
	IsActive     bool   `json:"-" gorm:"not null;default:true"`
}
