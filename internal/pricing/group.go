// Package pricing derives per-room-type price summaries from the flat
// offer list returned by the upstream price endpoint.
package pricing

import "github.com/perla-resort/booking-api/internal/models"

// fallbackCurrency labels room types that have no offers at all.
const fallbackCurrency = "TRY"

// EffectivePrice is the price a guest would actually pay for an offer:
// the discounted price when one is set, otherwise the gross price.
// A discounted price of exactly 0 falls through to the gross price —
// the upstream feed does not distinguish "no discount quoted" from
// "discounted to zero", and this helper is the single place where that
// ambiguity is resolved.
func EffectivePrice(o models.PriceOffer) float64 {
	if o.DiscountedPrice != 0 {
		return o.DiscountedPrice
	}
	return o.Price
}

// GroupByRoomType partitions offers by room-type id and emits one
// RoomTypeWithPrices per entry of roomTypes, in roomTypes order. Room
// types with no matching offers are still emitted, with an empty offer
// list and zero min/max prices, so the room listing can render them as
// unavailable. Offer order within a group follows the input order.
func GroupByRoomType(offers []models.PriceOffer, roomTypes []models.RoomTypeInfo) []models.RoomTypeWithPrices {
	grouped := make(map[int][]models.PriceOffer)
	for _, offer := range offers {
		grouped[offer.RoomTypeID] = append(grouped[offer.RoomTypeID], offer)
	}

	result := make([]models.RoomTypeWithPrices, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		group := grouped[roomType.RoomID]
		if len(group) == 0 {
			result = append(result, models.RoomTypeWithPrices{
				RoomType:    roomType,
				PriceOffers: []models.PriceOffer{},
				Currency:    fallbackCurrency,
			})
			continue
		}

		minPrice := EffectivePrice(group[0])
		maxPrice := minPrice
		for _, offer := range group[1:] {
			price := EffectivePrice(offer)
			if price < minPrice {
				minPrice = price
			}
			if price > maxPrice {
				maxPrice = price
			}
		}

		result = append(result, models.RoomTypeWithPrices{
			RoomType:    roomType,
			PriceOffers: group,
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
			// Offers within one room type share a currency; the first
			// offer's code stands for the group.
			Currency: group[0].Currency,
		})
	}

	return result
}
