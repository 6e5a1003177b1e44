package model

type Customer struct {
	BaseModel
	Name  string `gorm:"type:varchar(255)" json:"name"`
	Email string `gorm:"type:varchar(255);index" json:"email"` // not unique

	Orders []Order `json:"orders,omitempty"`
}

// Table is a physical table in the dining room
type Table struct {
	BaseModel
	TableNumber int `gorm:"not null" json:"table_number"`

	Orders []Order `json:"orders,omitempty"`
}

func (Table) TableName() string {
	return "tables"
}
