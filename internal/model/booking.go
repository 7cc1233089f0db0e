package model

import "time"

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Train struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	BasePrice          float64 `json:"base_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

// Ticket references its user and train; it does not own them.
// ID is zero until the ticket has been saved.
type Ticket struct {
	ID          int64     `json:"id"`
	User        *User     `json:"user"`
	Train       *Train    `json:"train"`
	BookingDate time.Time `json:"booking_date"`
	FinalPrice  float64   `json:"final_price"`
}
