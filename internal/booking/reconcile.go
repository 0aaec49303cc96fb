package booking

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/perla-resort/booking-api/internal/models"
)

// priceTolerancePercent is the largest relative drift between the
// selected and the freshly quoted discounted price that a reservation
// may absorb silently.
const priceTolerancePercent = 1.0

// ErrOfferGone means the selected tariff no longer appears in a fresh
// quote. Terminal for the submission attempt; the guest has to search
// again.
var ErrOfferGone = errors.New("selected offer is no longer available")

// PriceChangedError reports a price drift beyond tolerance. It carries
// both prices so the caller can ask the guest to confirm the new one
// instead of silently booking at a different price.
type PriceChangedError struct {
	OldPrice    float64
	NewPrice    float64
	OldCurrency string
	NewCurrency string
}

func (e *PriceChangedError) Error() string {
	return fmt.Sprintf("price changed from %.2f %s to %.2f %s",
		e.OldPrice, e.OldCurrency, e.NewPrice, e.NewCurrency)
}

// Quoter is the slice of the upstream client the reconciliation step
// needs.
type Quoter interface {
	PriceOffers(ctx context.Context, search models.SearchParams, currency, language string) ([]models.PriceOffer, error)
}

// Reconcile re-quotes the search and verifies that the selected offer
// is still available at (close to) its original price. Within the 1%
// tolerance the fresh price-dependent fields are merged into the
// returned offer, so the submitted price is never stale by more than
// one round trip. Must complete before the reservation is submitted.
func Reconcile(ctx context.Context, quoter Quoter, offer models.PriceOffer, searchParams models.SearchParams, language string) (models.PriceOffer, error) {
	freshOffers, err := quoter.PriceOffers(ctx, searchParams, offer.Currency, language)
	if err != nil {
		return models.PriceOffer{}, fmt.Errorf("failed to fetch fresh prices: %w", err)
	}

	var current *models.PriceOffer
	for i := range freshOffers {
		if freshOffers[i].SameTariff(offer) {
			current = &freshOffers[i]
			break
		}
	}
	if current == nil {
		return models.PriceOffer{}, ErrOfferGone
	}

	drift := math.Abs(current.DiscountedPrice-offer.DiscountedPrice) / offer.DiscountedPrice * 100
	if drift > priceTolerancePercent {
		return models.PriceOffer{}, &PriceChangedError{
			OldPrice:    offer.DiscountedPrice,
			NewPrice:    current.DiscountedPrice,
			OldCurrency: offer.Currency,
			NewCurrency: current.Currency,
		}
	}

	offer.DiscountedPrice = current.DiscountedPrice
	offer.Price = current.Price
	offer.DiscountAmount = current.DiscountAmount
	offer.PromotionAmount = current.PromotionAmount
	offer.RoomToSell = current.RoomToSell
	return offer, nil
}
