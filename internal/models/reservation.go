package models

// Guest title IDs on the reservation wire format.
const (
	TitleMr    = 0
	TitleMs    = 1
	TitleChild = 2
	TitleBaby  = 3
)

// Gender IDs on the reservation wire format.
const (
	GenderMale   = 0
	GenderFemale = 1
)

// Payment types accepted by the reservation endpoints. Payment is
// handled out of band by the hotel, so requests always carry NotPaid.
const (
	PaymentTypeNotPaid = 2
	PaymentTypePaid    = 3
)

// Tax types on the reservation wire format.
const (
	TaxTypeCompany  = 1
	TaxTypePersonal = 2
)

// GuestInfo is one guest record as the reservation endpoints expect it.
type GuestInfo struct {
	TitleID       int    `json:"title-id"`
	Gender        int    `json:"gender"`
	Country       string `json:"country,omitempty"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Birthday      string `json:"birthday,omitempty"`
	NationalityNo string `json:"nationality-no,omitempty"`
	PassportNo    string `json:"passport-no,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// ReservationRequest is the write-only command sent once to create a
// booking. Built from a PriceOffer plus form data and discarded within
// the request.
type ReservationRequest struct {
	HotelID           int         `json:"hotel-id"`
	RateTypeID        int         `json:"rate-type-id"`
	BoardTypeID       int         `json:"board-type-id"`
	RateCodeID        int         `json:"rate-code-id"`
	RoomTypeID        int         `json:"room-type-id"`
	RoomID            int         `json:"room-id,omitempty"`
	CurrencyCode      string      `json:"currency-code"`
	TotalPrice        float64     `json:"total-price"`
	PriceAgencyID     int         `json:"price-agency-id"`
	AdultCount        int         `json:"adult-count"`
	Nationality       string      `json:"nationality"`
	CheckIn           string      `json:"check-in"`
	CheckOut          string      `json:"check-out"`
	MarketID          int         `json:"market-id,omitempty"`
	ElderChildCount   int         `json:"elder-child-count"`
	YoungerChildCount int         `json:"younger-child-count"`
	BabyCount         int         `json:"baby-count"`
	GuestList         []GuestInfo `json:"guest-list"`
	ResNotes          string      `json:"res-notes,omitempty"`
	RoomCount         int         `json:"room-count,omitempty"`
	ContactFirstName  string      `json:"contact-first-name,omitempty"`
	ContactLastName   string      `json:"contact-last-name,omitempty"`
	ContactEmail      string      `json:"contact-email,omitempty"`
	ContactPhone      string      `json:"contact-phone,omitempty"`
	SellerCommission  float64     `json:"seller-commission,omitempty"`
	VoucherNo         string      `json:"voucher-no,omitempty"`
	PaymentType       int         `json:"payment-type,omitempty"`
	TaxCompany        string      `json:"tax-company,omitempty"`
	TaxNo             string      `json:"tax-no,omitempty"`
	TaxPlace          string      `json:"tax-place,omitempty"`
	TaxAddress        string      `json:"tax-address,omitempty"`
	TaxType           int         `json:"tax-type,omitempty"`
}

// UpdateReservationRequest modifies an existing booking. Unlike create
// it carries the reservation id plus a few agency-side extras.
type UpdateReservationRequest struct {
	HotelID           int         `json:"hotel-id"`
	ReservationID     int         `json:"reservation-id"`
	RateTypeID        int         `json:"rate-type-id"`
	BoardTypeID       int         `json:"board-type-id"`
	RoomTypeID        int         `json:"room-type-id"`
	RateCodeID        int         `json:"rate-code-id"`
	RoomID            int         `json:"room-id,omitempty"`
	CurrencyCode      string      `json:"currency-code"`
	TotalPrice        float64     `json:"total-price"`
	PriceAgencyID     int         `json:"price-agency-id"`
	AdultCount        int         `json:"adult-count"`
	Nationality       string      `json:"nationality"`
	CheckIn           string      `json:"check-in"`
	CheckOut          string      `json:"check-out"`
	MarketID          int         `json:"market-id,omitempty"`
	ElderChildCount   int         `json:"elder-child-count"`
	YoungerChildCount int         `json:"younger-child-count"`
	BabyCount         int         `json:"baby-count"`
	GuestList         []GuestInfo `json:"guest-list"`
	RoomCount         int         `json:"room-count,omitempty"`
	AgencyCommission  float64     `json:"agency-commission,omitempty"`
	VoucherNo         string      `json:"voucher-no"`
	SellerCommission  float64     `json:"seller-commission,omitempty"`
	PromoCode         string      `json:"promo-code,omitempty"`
	UseGuestBonus     bool        `json:"use-guest-bonus"`
	IsOffer           bool        `json:"is-offer"`
}

// ReservationResponse is the upstream answer to createReservation.
type ReservationResponse struct {
	Success       bool `json:"success"`
	ReservationID int  `json:"reservation-id"`
}

// UpdateReservationResponse is the upstream answer to updateReservation.
type UpdateReservationResponse struct {
	Success       bool   `json:"success"`
	ReservationID int    `json:"reservation-id"`
	Message       string `json:"message,omitempty"`
}

// GuestForm is one guest as entered on the reservation form.
type GuestForm struct {
	Title         string `json:"title" doc:"One of mr, ms, child, baby"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Birthday      string `json:"birthday,omitempty" doc:"YYYY-MM-DD, required for child and baby"`
	Gender        string `json:"gender,omitempty" doc:"male or female"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	NationalityNo string `json:"nationalityNo,omitempty"`
	PassportNo    string `json:"passportNo,omitempty"`
}

// ReservationForm is the guest-facing form submitted with a selected
// offer to create a booking.
type ReservationForm struct {
	ContactFirstName string      `json:"contactFirstName"`
	ContactLastName  string      `json:"contactLastName"`
	ContactEmail     string      `json:"contactEmail"`
	ContactPhone     string      `json:"contactPhone"`
	Nationality      string      `json:"nationality"`
	Guests           []GuestForm `json:"guests"`
	Notes            string      `json:"notes,omitempty"`
	TaxType          string      `json:"taxType,omitempty" doc:"personal or company"`
	TaxCompany       string      `json:"taxCompany,omitempty"`
	TaxNo            string      `json:"taxNo,omitempty"`
	TaxAddress       string      `json:"taxAddress,omitempty"`
}

// UpdateReservationForm extends the create form with update-only fields.
type UpdateReservationForm struct {
	ReservationForm
	VoucherNo        string  `json:"voucherNo,omitempty"`
	PromoCode        string  `json:"promoCode,omitempty"`
	SellerCommission float64 `json:"sellerCommission,omitempty"`
	UseGuestBonus    bool    `json:"useGuestBonus,omitempty"`
	IsOffer          bool    `json:"isOffer,omitempty"`
}
