// Package search validates and normalizes raw search input before any
// upstream pricing call is made.
package search

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/perla-resort/booking-api/internal/models"
)

// DefaultCurrency is used whenever the requested currency cannot be
// resolved to a supported code.
const DefaultCurrency = "TRY"

// MaxChildren is the number of indexed child-age fields the search
// surface accepts (child1..child6).
const MaxChildren = 6

const (
	minAdults   = 1
	maxAdults   = 8
	minChildAge = 1
	maxChildAge = 17
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var supportedCurrencies = map[string]bool{
	"EUR": true,
	"USD": true,
	"TRY": true,
}

// Query carries the raw query-string values of a search request. Child
// holds the child1..child6 values in index order; absent fields are
// empty strings.
type Query struct {
	FromDate string
	ToDate   string
	Adult    string
	Children []string
}

// Normalizer turns raw query input into validated SearchParams.
type Normalizer struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger, now: time.Now}
}

// FromQuery validates q and returns the resulting SearchParams, or nil
// when the input cannot form a valid search. A nil result means the
// caller should prompt for new input instead of calling the pricing
// API; it is not an error condition.
func (n *Normalizer) FromQuery(q Query) *models.SearchParams {
	if q.FromDate == "" || q.ToDate == "" {
		n.logger.Debug("search rejected: missing date parameters",
			slog.String("fromdate", q.FromDate), slog.String("todate", q.ToDate))
		return nil
	}

	if !dateRe.MatchString(q.FromDate) || !dateRe.MatchString(q.ToDate) {
		n.logger.Debug("search rejected: invalid date format",
			slog.String("fromdate", q.FromDate), slog.String("todate", q.ToDate))
		return nil
	}

	fromDate, err := time.Parse("2006-01-02", q.FromDate)
	if err != nil {
		return nil
	}
	toDate, err := time.Parse("2006-01-02", q.ToDate)
	if err != nil {
		return nil
	}

	// Compare against the current calendar day, time of day zeroed.
	now := n.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if fromDate.Before(today) {
		n.logger.Debug("search rejected: from date is in the past", slog.String("fromdate", q.FromDate))
		return nil
	}
	if !toDate.After(fromDate) {
		n.logger.Debug("search rejected: to date must be after from date",
			slog.String("fromdate", q.FromDate), slog.String("todate", q.ToDate))
		return nil
	}

	adults := 2
	if q.Adult != "" {
		adults, err = strconv.Atoi(q.Adult)
		if err != nil {
			n.logger.Debug("search rejected: adult count is not a number", slog.String("adult", q.Adult))
			return nil
		}
	}
	if adults < minAdults || adults > maxAdults {
		n.logger.Debug("search rejected: adult count out of range", slog.Int("adults", adults))
		return nil
	}

	// Invalid or out-of-range child ages are dropped, never rejected.
	children := make([]models.ChildAge, 0, len(q.Children))
	for i, raw := range q.Children {
		if i >= MaxChildren || raw == "" {
			continue
		}
		age, err := strconv.Atoi(raw)
		if err != nil || age < minChildAge || age > maxChildAge {
			n.logger.Debug("dropping invalid child age", slog.Int("index", i+1), slog.String("value", raw))
			continue
		}
		children = append(children, models.ChildAge{Age: age})
	}

	return &models.SearchParams{
		FromDate: q.FromDate,
		ToDate:   q.ToDate,
		Adults:   adults,
		Children: children,
	}
}

// NormalizeCurrency resolves a requested currency to a supported code.
// The legacy two-letter TL alias maps to TRY. Unknown or too-short
// codes silently fall back to DefaultCurrency so a bad currency never
// blocks the offers page.
func (n *Normalizer) NormalizeCurrency(currency string) string {
	normalized := DefaultCurrency
	if len(currency) >= 2 {
		normalized = strings.ToUpper(currency)
	}
	if normalized == "TL" {
		normalized = "TRY"
	}
	if !supportedCurrencies[normalized] || len(normalized) < 3 {
		if currency != "" {
			n.logger.Warn("unsupported currency, falling back",
				slog.String("requested", currency), slog.String("using", DefaultCurrency))
		}
		return DefaultCurrency
	}
	return normalized
}

// ParseTitle maps a form title to its wire enum. Unknown titles are an
// error at the validation boundary rather than a silent zero.
func ParseTitle(title string) (int, error) {
	switch title {
	case "mr":
		return models.TitleMr, nil
	case "ms":
		return models.TitleMs, nil
	case "child":
		return models.TitleChild, nil
	case "baby":
		return models.TitleBaby, nil
	default:
		return 0, fmt.Errorf("unknown guest title %q", title)
	}
}

// ParseGender maps a form gender to its wire enum. Anything other than
// "male" is female on the wire, matching the booking API's contract.
func ParseGender(gender string) int {
	if gender == "male" {
		return models.GenderMale
	}
	return models.GenderFemale
}
