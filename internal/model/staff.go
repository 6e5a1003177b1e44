package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Staff is a restaurant employee allowed to take orders when auth is enforced
type Staff struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string     `gorm:"type:varchar(255)" json:"full_name"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	TokenVersion string     `gorm:"type:varchar(64);default:''" json:"-"` // rotated on login, invalidates older tokens
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}

// SetPassword hashes and sets the staff member's password
func (s *Staff) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.Password = string(hashed)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (s *Staff) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(password)) == nil
}
