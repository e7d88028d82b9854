package model

// Property is a single listing row. Type is a free-form category label
// ("House", "Townhouse", ...) and may be explicitly null.
type Property struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Address   string  `gorm:"type:varchar(255);not null" json:"address" validate:"required,max=255"`
	Price     float64 `gorm:"not null" json:"price"`
	Bedrooms  int     `gorm:"not null;default:0" json:"bedrooms"`
	Bathrooms int     `gorm:"not null;default:0" json:"bathrooms"`
	Type      *string `gorm:"type:varchar(255)" json:"type"`
}
