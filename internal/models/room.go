package models

// RoomRules are the occupancy limits of a room type.
type RoomRules struct {
	MaxAdultCapacity int  `json:"max-adult-capacity"`
	MaxChildCapacity *int `json:"max-child-capacity"`
	MinChildCapacity *int `json:"min-child-capacity"`
	MaxBabyCapacity  *int `json:"max-baby-capacity"`
	MaxPaxCapacity   int  `json:"max-pax-capacity"`
}

// RoomAmenity is one amenity entry of a room type.
type RoomAmenity struct {
	Name      string `json:"name"`
	GroupName string `json:"group-name"`
	GroupIcon int    `json:"group-icon"`
}

// RoomTypeInfo is the static descriptive metadata of a room class. It
// changes rarely and is safe to cache for a day.
type RoomTypeInfo struct {
	RoomID         int           `json:"room-id"`
	RoomGroupID    *int          `json:"room-group-id"`
	RoomName       string        `json:"room-name"`
	RoomCode       string        `json:"room-code"`
	RoomProperty   *string       `json:"room-property"`
	RoomImageURL   string        `json:"room-image-url"`
	RoomBedOptions *string       `json:"room-bed-options"`
	RoomArea       *float64      `json:"room-area"`
	RoomLevel      int           `json:"room-level"`
	RoomRules      RoomRules     `json:"room-rules"`
	HasWifi        bool          `json:"room-has-wifi"`
	HasSafe        bool          `json:"room-has-safe"`
	HasPrivateBath bool          `json:"room-has-private-bath"`
	HasHairdryer   bool          `json:"room-has-hairdryer"`
	HasBalcony     bool          `json:"room-has-balcony"`
	Amenities      []RoomAmenity `json:"room-amenity"`
	Images         []string      `json:"room-images"`
	Longitude      *float64      `json:"room-longitude"`
	Latitude       *float64      `json:"room-latitude"`
}

// BoardTypeInfo is a meal-plan classification (room only, breakfast,
// half/full board, all inclusive).
type BoardTypeInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	SysCode     string `json:"sys-code"`
	Description string `json:"description"`
}

// RateTypeInfo is a cancellation/payment policy classification.
type RateTypeInfo struct {
	ID                 int    `json:"id"`
	Code               string `json:"code"`
	PayNowPercent      float64 `json:"pay-now-percent"`
	MinLOS             *int   `json:"min-los"`
	MaxLOS             *int   `json:"max-los"`
	CancellationPossible bool `json:"cancellation-possible"`
	BookableBeforeDays int    `json:"bookable-before-days"`
	DaysBeforeArrival  int    `json:"days-before-arrival"`
	PeriodInDays       *int   `json:"period-in-days"`
	PaymentInformation string `json:"payment-information"`
	CancelPolicy       string `json:"cancel-policy"`
}

// Definitions is the room/board/rate catalog of the hotel.
type Definitions struct {
	RoomTypes  []RoomTypeInfo  `json:"roomtype"`
	BoardTypes []BoardTypeInfo `json:"boardtypes"`
	RateTypes  []RateTypeInfo  `json:"ratetypes"`
}
