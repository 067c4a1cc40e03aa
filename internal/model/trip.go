package model

import "time"

type Country struct {
	ID   int    `db:"id_country" json:"id"`
	Name string `db:"name" json:"name"`
}

type Trip struct {
	ID          int       `db:"id_trip" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	DateFrom    time.Time `db:"date_from" json:"dateFrom"`
	DateTo      time.Time `db:"date_to" json:"dateTo"`
	MaxPeople   int       `db:"max_people" json:"maxPeople"`
	Countries   []Country `db:"-" json:"countries"`
}

// ClientTrip is a trip seen through one client's registration.
type ClientTrip struct {
	Trip
	RegisteredAt int  `db:"registered_at" json:"registeredAt"`
	PaymentDate  *int `db:"payment_date" json:"paymentDate"`
}
