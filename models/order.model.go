package models

import "gorm.io/gorm"

// OrderStatus is the order lifecycle state
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderRejected  OrderStatus = "rejected"
	OrderCompleted OrderStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected, OrderCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderRejected || s == OrderCompleted
}

// CanTransition reports whether the state machine defines an edge s -> to.
// pending -> accepted | rejected, accepted -> completed. Nothing leaves a
// terminal state, so a repeated accept can never re-apply its decrement.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	switch s {
	case OrderPending:
		return to == OrderAccepted || to == OrderRejected
	case OrderAccepted:
		return to == OrderCompleted
	}
	return false
}

// Order is a buyer's purchase request against a crop's inventory. TotalPrice
// is frozen at creation time and never recomputed from the crop's price.
type Order struct {
	gorm.Model
	Quantity   float64     `gorm:"not null" json:"quantity"`
	TotalPrice float64     `gorm:"not null" json:"totalPrice"`
	Status     OrderStatus `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	BuyerID    uint        `gorm:"not null;index" json:"buyerId"`
	CropID     uint        `gorm:"not null;index" json:"cropId"`

	// Relations
	Buyer   *User    `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Crop    *Crop    `gorm:"foreignKey:CropID" json:"crop,omitempty"`
	Reviews []Review `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
