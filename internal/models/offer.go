package models

// CancellationPenalty describes the refund terms attached to an offer.
type CancellationPenalty struct {
	Description       string   `json:"description"`
	PeriodInDays      *int     `json:"period-in-days"`
	PenaltyPercentage *float64 `json:"penalty-percentage"`
	IsRefundable      bool     `json:"is-refundable"`
}

// PriceOffer is one priced room/board/rate combination returned by the
// upstream price endpoint for a given date range and occupancy. Offers
// are quotes at a point in time and are never cached or persisted.
type PriceOffer struct {
	ID                       string              `json:"id"`
	HotelID                  int                 `json:"hotel-id"`
	RoomTypeID               int                 `json:"room-type-id"`
	RoomType                 string              `json:"room-type"`
	BoardTypeID              int                 `json:"board-type-id"`
	BoardType                string              `json:"board-type"`
	RateTypeID               int                 `json:"rate-type-id"`
	RateType                 string              `json:"rate-type"`
	RateCodeID               int                 `json:"rate-code-id"`
	RateCode                 string              `json:"rate-code"`
	PriceAgencyID            int                 `json:"price-agency-id"`
	RoomCount                int                 `json:"room-count,omitempty"`
	RoomToSell               int                 `json:"room-tosell"`
	StopSell                 bool                `json:"stop-sell"`
	StopSellClosedToArrival  bool                `json:"stop-sell-closed-to-arrival"`
	StopSellClosedToDeparture bool               `json:"stop-sell-closed-to-departure"`
	MinLOS                   *int                `json:"min-los"`
	MaxLOS                   *int                `json:"max-los"`
	BookableAfterDays        *int                `json:"bookable-after-days"`
	Price                    float64             `json:"price"`
	CurrencyID               int                 `json:"currency-id"`
	Currency                 string              `json:"currency"`
	CommissionPercent        float64             `json:"commission-percent"`
	DiscountPercent          float64             `json:"discount-percent"`
	DiscountAmount           float64             `json:"discount-amount"`
	PromotionPercent         float64             `json:"promotion-percent"`
	PromotionAmount          float64             `json:"promotion-amount"`
	DiscountedPrice          float64             `json:"discounted-price"`
	CancellationPenalty      CancellationPenalty `json:"cancellation-penalty"`
}

// SameTariff reports whether two offers refer to the same room/board/
// rate/rate-code combination. Prices may differ between the two; this is
// the identity used to re-find an offer in a fresh quote.
func (o PriceOffer) SameTariff(other PriceOffer) bool {
	return o.RoomTypeID == other.RoomTypeID &&
		o.BoardTypeID == other.BoardTypeID &&
		o.RateTypeID == other.RateTypeID &&
		o.RateCodeID == other.RateCodeID
}

// RoomTypeWithPrices is one room type plus every offer quoted for it,
// with a min/max price summary over the group. Built fresh per search
// request and never stored.
type RoomTypeWithPrices struct {
	RoomType    RoomTypeInfo `json:"roomType"`
	PriceOffers []PriceOffer `json:"priceOffers"`
	MinPrice    float64      `json:"minPrice"`
	MaxPrice    float64      `json:"maxPrice"`
	Currency    string       `json:"currency"`
}
