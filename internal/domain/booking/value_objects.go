package booking

import (
	"math"
	"strings"
	"unicode/utf8"

	"court-reservation/internal/pkg/errs"
)

const MaxCourtLength = 64

// MaxPrice is the largest amount the bookings.total_price NUMERIC(10,2) column holds.
const MaxPrice = 99999999.99

type Court struct {
	name string
}

func NewCourt(s string) (Court, error) {
	name := strings.TrimSpace(s)
	if name == "" || utf8.RuneCountInString(name) > MaxCourtLength {
		return Court{}, ErrInvalidCourt
	}
	return Court{name: name}, nil
}

func (c Court) String() string { return c.name }

// Price is the quoted total for the booking; it is recorded, never computed here.
type Price struct {
	amount float64
}

func NewPrice(v float64) (Price, error) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Price{}, ErrInvalidPrice
	}
	amount := math.Round(v*100) / 100
	if amount > MaxPrice {
		return Price{}, errs.Wrapf(ErrInvalidPrice, "total price above %.2f", MaxPrice)
	}
	return Price{amount: amount}, nil
}

func (p Price) Amount() float64 { return p.amount }
