package repository

import (
	"errors"
	"time"

	"restaurant-orders/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	FindByEmail(email string) (*model.Staff, error)
	FindByID(id uint) (*model.Staff, error)
	Create(staff *model.Staff) error
	UpdatePassword(id uint, hashedPassword string) error
	UpdateLogin(id uint, tokenVersion string) error
	SeedAdmin(email, password string) (bool, error)
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db}
}

func (r *staffRepo) FindByEmail(email string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) FindByID(id uint) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepo) UpdatePassword(id uint, hashedPassword string) error {
	return r.db.Model(&model.Staff{}).Where("id = ?", id).Update("password", hashedPassword).Error
}

func (r *staffRepo) UpdateLogin(id uint, tokenVersion string) error {
	return r.db.Model(&model.Staff{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"token_version": tokenVersion,
			"last_login_at": time.Now(),
		}).Error
}

// SeedAdmin creates the default staff account if it doesn't exist. Reports whether one was created.
func (r *staffRepo) SeedAdmin(email, password string) (bool, error) {
	_, err := r.FindByEmail(email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	admin := &model.Staff{
		Email:    email,
		FullName: "Restaurant Manager",
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		return false, err
	}
	return true, r.db.Create(admin).Error
}
