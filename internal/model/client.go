package model

type Client struct {
	ID        int     `db:"id_client" json:"id"`
	FirstName string  `db:"first_name" json:"firstName"`
	LastName  string  `db:"last_name" json:"lastName"`
	Email     string  `db:"email" json:"email"`
	Telephone *string `db:"telephone" json:"telephone,omitempty"`
	Pesel     *string `db:"pesel" json:"pesel,omitempty"`
}

type CreateClientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Pesel     string `json:"pesel"`
}

type CreateClientResponse struct {
	ID int `json:"id"`
}

// Registration is one client's place on one trip.
type Registration struct {
	ClientID     int  `db:"id_client" json:"clientId"`
	TripID       int  `db:"id_trip" json:"tripId"`
	RegisteredAt int  `db:"registered_at" json:"registeredAt"`
	PaymentDate  *int `db:"payment_date" json:"paymentDate"`
}
