// Package booking assembles reservation requests for the upstream
// booking API from a selected offer, the validated search and the
// guest-facing form.
package booking

import (
	"fmt"

	"github.com/perla-resort/booking-api/internal/models"
	"github.com/perla-resort/booking-api/internal/search"
)

// ChildCounts is the occupancy breakdown the reservation endpoints
// expect. Elder covers ages 12-17, younger 2-11, baby everything below
// 2. The search surface only accepts ages 1-17, so in practice the baby
// bucket is fed solely by one-year-olds.
type ChildCounts struct {
	Elder   int
	Younger int
	Baby    int
}

// CountChildren buckets child ages into the wire format's three bands.
// Stateless and idempotent.
func CountChildren(children []models.ChildAge) ChildCounts {
	var counts ChildCounts
	for _, child := range children {
		switch {
		case child.Age >= 12 && child.Age <= 17:
			counts.Elder++
		case child.Age >= 2 && child.Age <= 11:
			counts.Younger++
		case child.Age < 2:
			counts.Baby++
		}
	}
	return counts
}

// guestList maps form guests to wire guest records. Nationality comes
// from the form's top-level field, not per guest. Identity numbers
// (nationality no, passport no) are only sent on the update path.
func guestList(form models.ReservationForm, withIdentity bool) ([]models.GuestInfo, error) {
	guests := make([]models.GuestInfo, 0, len(form.Guests))
	for i, guest := range form.Guests {
		titleID, err := search.ParseTitle(guest.Title)
		if err != nil {
			return nil, fmt.Errorf("guest %d: %w", i+1, err)
		}

		info := models.GuestInfo{
			TitleID:  titleID,
			Gender:   search.ParseGender(guest.Gender),
			Country:  form.Nationality,
			Name:     guest.FirstName,
			Surname:  guest.LastName,
			Birthday: guest.Birthday,
			Email:    guest.Email,
			Phone:    guest.Phone,
		}
		if withIdentity {
			info.NationalityNo = guest.NationalityNo
			info.PassportNo = guest.PassportNo
		}
		guests = append(guests, info)
	}
	return guests, nil
}

// BuildCreate assembles the createReservation command from a (already
// reconciled) offer, the search and the form. Room count is fixed at 1;
// multi-room single reservations are not supported. Payment is handled
// out of band by the hotel, so payment type is always "not paid".
func BuildCreate(offer models.PriceOffer, searchParams models.SearchParams, form models.ReservationForm) (models.ReservationRequest, error) {
	guests, err := guestList(form, false)
	if err != nil {
		return models.ReservationRequest{}, err
	}

	counts := CountChildren(searchParams.Children)

	taxType := models.TaxTypePersonal
	if form.TaxType == "company" {
		taxType = models.TaxTypeCompany
	}

	return models.ReservationRequest{
		HotelID:           offer.HotelID,
		RateTypeID:        offer.RateTypeID,
		BoardTypeID:       offer.BoardTypeID,
		RateCodeID:        offer.RateCodeID,
		RoomTypeID:        offer.RoomTypeID,
		CurrencyCode:      offer.Currency,
		TotalPrice:        offer.DiscountedPrice,
		PriceAgencyID:     offer.PriceAgencyID,
		AdultCount:        searchParams.Adults,
		Nationality:       form.Nationality,
		CheckIn:           searchParams.FromDate,
		CheckOut:          searchParams.ToDate,
		ElderChildCount:   counts.Elder,
		YoungerChildCount: counts.Younger,
		BabyCount:         counts.Baby,
		GuestList:         guests,
		ResNotes:          form.Notes,
		RoomCount:         1,
		ContactFirstName:  form.ContactFirstName,
		ContactLastName:   form.ContactLastName,
		ContactEmail:      form.ContactEmail,
		ContactPhone:      form.ContactPhone,
		PaymentType:       models.PaymentTypeNotPaid,
		TaxType:           taxType,
		TaxCompany:        form.TaxCompany,
		TaxNo:             form.TaxNo,
		TaxAddress:        form.TaxAddress,
	}, nil
}

// BuildUpdate assembles the updateReservation command. Unlike create it
// carries the reservation id, per-guest identity numbers and the agency
// extras, and its price is taken from the offer as-is: existing
// reservations keep their negotiated price, so the update path performs
// no price reconciliation.
func BuildUpdate(reservationID int, offer models.PriceOffer, searchParams models.SearchParams, form models.UpdateReservationForm) (models.UpdateReservationRequest, error) {
	guests, err := guestList(form.ReservationForm, true)
	if err != nil {
		return models.UpdateReservationRequest{}, err
	}

	counts := CountChildren(searchParams.Children)

	return models.UpdateReservationRequest{
		HotelID:           offer.HotelID,
		ReservationID:     reservationID,
		RateTypeID:        offer.RateTypeID,
		BoardTypeID:       offer.BoardTypeID,
		RateCodeID:        offer.RateCodeID,
		RoomTypeID:        offer.RoomTypeID,
		CurrencyCode:      offer.Currency,
		TotalPrice:        offer.DiscountedPrice,
		PriceAgencyID:     offer.PriceAgencyID,
		AdultCount:        searchParams.Adults,
		Nationality:       form.Nationality,
		CheckIn:           searchParams.FromDate,
		CheckOut:          searchParams.ToDate,
		ElderChildCount:   counts.Elder,
		YoungerChildCount: counts.Younger,
		BabyCount:         counts.Baby,
		GuestList:         guests,
		RoomCount:         1,
		AgencyCommission:  offer.CommissionPercent,
		VoucherNo:         form.VoucherNo,
		SellerCommission:  form.SellerCommission,
		PromoCode:         form.PromoCode,
		UseGuestBonus:     form.UseGuestBonus,
		IsOffer:           form.IsOffer,
	}, nil
}
