package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SystemActor is recorded in audit columns when no staff member is attached to the request
const SystemActor = "system"

func init() {
	// Prices travel as JSON numbers (7.5), not strings ("7.5")
	decimal.MarshalJSONWithoutQuotes = true
}

// BaseModel handles the integer ID and audit trail shared by every table
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedBy string `gorm:"type:varchar(64)" json:"created_by"`
	UpdatedBy string `gorm:"type:varchar(64)" json:"updated_by"`
}

func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.CreatedBy == "" {
		base.CreatedBy = SystemActor
	}
	if base.UpdatedBy == "" {
		base.UpdatedBy = base.CreatedBy
	}
	return
}

// All lists every table for AutoMigrate, parents before children
func All() []interface{} {
	return []interface{}{
		&Product{},
		&Price{},
		&Customer{},
		&Table{},
		&Order{},
		&OrderDetail{},
		&Staff{},
	}
}
