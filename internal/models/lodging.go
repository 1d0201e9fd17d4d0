package models

// Types d'hébergement autorisés.
var LodgingTypes = []string{"Hotel", "Hostel", "Inn"}

type Lodging struct {
	ID          string  `db:"id" json:"id"`
	SpotID      string  `db:"spot_id" json:"spotId"`
	Name        string  `db:"name" json:"name"`
	Address     string  `db:"address" json:"address"`
	Phone       string  `db:"phone" json:"phone"`
	AvgPrice    float64 `db:"avg_price" json:"avgPrice"`
	Type        string  `db:"type" json:"type"`
	BookingLink *string `db:"booking_link" json:"bookingLink,omitempty"`
}

type LodgingInput struct {
	SpotID      string  `json:"spotId" binding:"required,uuid"`
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Address     string  `json:"address" binding:"required,min=1,max=255"`
	Phone       string  `json:"phone" binding:"required,min=5,max=30"`
	AvgPrice    float64 `json:"avgPrice" binding:"gte=0"`
	Type        string  `json:"type" binding:"required,oneof=Hotel Hostel Inn"`
	BookingLink *string `json:"bookingLink" binding:"omitempty,url"`
}
