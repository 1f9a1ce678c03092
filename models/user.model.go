package models

import "gorm.io/gorm"

// Role is the account type. A user's role is fixed at creation.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"unique;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	Role        Role   `gorm:"not null;type:varchar(20)" json:"role"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phoneNumber"`

	// Relations
	Crops   []Crop   `gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE" json:"crops,omitempty"`
	Orders  []Order  `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Reviews []Review `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

func (User) TableName() string {
	return "users"
}
