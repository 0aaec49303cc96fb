package models

import "encoding/json"

// RawHotelImage is the image entry as the upstream API sends it. Field
// presence varies between hotels, hence the pointer/omitempty mix.
type RawHotelImage struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	ImageURL    string `json:"image-url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageType   string `json:"image-type,omitempty"`
	IsMain      bool   `json:"is-main,omitempty"`
	Order       int    `json:"order,omitempty"`
}

// HotelImage is the normalized image shape served to the frontend.
type HotelImage struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	IsMain      bool   `json:"isMain"`
}

// Facility is one hotel facility entry.
type Facility struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category"`
}

// Location is the hotel's geo position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HotelParams is the hotel's marketing metadata: general information,
// promotional photos and contact details.
type HotelParams struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Website     string          `json:"website"`
	Images      json.RawMessage `json:"images"`
	Facilities  []Facility      `json:"facilities"`
	Location    *Location       `json:"location,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	ReviewCount *int            `json:"reviewCount,omitempty"`
}

// Hotel is HotelParams with the image list normalized for display.
type Hotel struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Address     string       `json:"address"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Website     string       `json:"website"`
	Images      []HotelImage `json:"images"`
	Facilities  []Facility   `json:"facilities"`
	Location    *Location    `json:"location,omitempty"`
	Rating      *float64     `json:"rating,omitempty"`
	ReviewCount *int         `json:"reviewCount,omitempty"`
}
