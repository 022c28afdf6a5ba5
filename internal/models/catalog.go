package models

// Catalog entities managed on the backend and listed in console form selects.

type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Technician struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type PaymentMethod struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
