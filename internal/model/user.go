package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// User representa um estudante ou administrador da plataforma
// swagger:model User
type User struct {
	BaseModel
	Nome      string     `gorm:"size:100;not null" json:"nome"`
	Email     string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha     string     `gorm:"size:255;not null" json:"-"`
	Role      UserRole   `gorm:"size:20;default:student" json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (User) TableName() string {
	return "usuarios"
}
