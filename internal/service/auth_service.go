package service

import (
	"errors"
	"log"

	"restaurant-orders/internal/model"
	"restaurant-orders/internal/repository"
	"restaurant-orders/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(req *LoginRequest) (*LoginResponse, error)
	ResetPassword(email, newPassword string) error
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Staff model.Staff `json:"staff"`
}

type authService struct {
	staffRepo repository.StaffRepository
}

func NewAuthService(staffRepo repository.StaffRepository) AuthService {
	return &authService{staffRepo: staffRepo}
}

// Login issues a token and rotates the token version, so a staff member has one live session
func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !staff.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !staff.IsActive {
		return nil, ErrStaffInactive
	}

	version := uuid.NewString()
	if err := s.staffRepo.UpdateLogin(staff.ID, version); err != nil {
		return nil, err
	}
	staff.TokenVersion = version

	token, err := jwt.GenerateToken(staff.ID, staff.Email, staff.FullName, version)
	if err != nil {
		return nil, err
	}

	log.Printf("Staff %s logged in", staff.Email)
	return &LoginResponse{Token: token, Staff: *staff}, nil
}

func (s *authService) ResetPassword(email, newPassword string) error {
	if len(newPassword) < 6 {
		return &ValidationError{Field: "Password", Tag: "min"}
	}

	staff, err := s.staffRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := staff.SetPassword(newPassword); err != nil {
		return err
	}
	return s.staffRepo.UpdatePassword(staff.ID, staff.Password)
}
