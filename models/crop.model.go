package models

import "gorm.io/gorm"

// Crop is a farmer's marketplace listing. Quantity can never go negative;
// the only decrement happens when an order against it is accepted.
type Crop struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Quantity    float64 `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Unit        string  `gorm:"not null;type:varchar(20)" json:"unit"`
	Category    string  `gorm:"not null;type:varchar(50)" json:"category"`
	Photo       string  `gorm:"default:''" json:"photo"`
	Published   bool    `gorm:"default:false" json:"published"`
	FarmerID    uint    `gorm:"not null;index" json:"farmerId"`

	// Relations
	Farmer *User   `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	Orders []Order `gorm:"foreignKey:CropID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

func (Crop) TableName() string {
	return "crops"
}
