package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an administrator allowed to edit reviews.
type User struct {
	gorm.Model
	UUID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid()"`
	Username    string
	DisplayName string
	Email       string `gorm:"uniqueIndex"`
}
