package models

import "gorm.io/gorm"

// Review is a buyer's rating of a completed order. FarmerID is denormalized
// from the reviewed crop at creation so farmer-side queries need no join.
type Review struct {
	gorm.Model
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment  string `gorm:"type:text;default:''" json:"comment"`
	BuyerID  uint   `gorm:"not null;index" json:"buyerId"`
	FarmerID uint   `gorm:"not null;index" json:"farmerId"`
	OrderID  uint   `gorm:"not null;uniqueIndex" json:"orderId"` // one review per order

	// Relations
	Buyer  *User  `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Farmer *User  `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	Order  *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
