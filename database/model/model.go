// Package model holds the gorm models persisted by DrugLens.
package model

// SearchDateLayout is the format of History.SearchDate.
const SearchDateLayout = "2006-01-02 15:04:05"

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" form:"password" gorm:"not null"`
}

// Medicine barcodes are neither unique nor required.
type Medicine struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" form:"name" binding:"required"`
	Barcode      string `json:"barcode" form:"barcode" gorm:"index"`
	Description  string `json:"description" form:"description"`
	Dosage       string `json:"dosage" form:"dosage"`
	SideEffects  string `json:"sideEffects" form:"side_effects"`
	Interactions string `json:"interactions" form:"interactions"`
}

type History struct {
	Id         int      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId     int      `json:"userId" gorm:"index"`
	MedicineId int      `json:"medicineId"`
	SearchDate string   `json:"searchDate"`
	User       User     `json:"-" gorm:"foreignKey:UserId"`
	Medicine   Medicine `json:"-" gorm:"foreignKey:MedicineId"`
}

func (History) TableName() string {
	return "history"
}

// HistoryRecord is one row of a user's history view.
type HistoryRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SearchDate  string `json:"searchDate"`
}
