package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DeliveryType is the fixed delivery channel recorded on every donation.
const DeliveryType = "Masjid Ibrahim"

// WeightUnit is the unit every stored weight is expressed in.
const WeightUnit = "lbs"

// UnknownAnimal labels donations that did not state an animal category.
const UnknownAnimal = "Unknown"

// Donation represents one persisted meat donation submission. Records are
// immutable after creation: there is no update or delete path.
type Donation struct {
	ID           int64
	Name         string
	Phone        string
	Email        string
	AnimalType   string
	WeightLbs    *float64
	City         string
	DeliveryType string
	SubmittedAt  time.Time
}

// ParseWeight normalizes a free-form weight submission into pounds. A
// trailing unit marker ("lbs" or "lb", any case) and surrounding whitespace
// are stripped before parsing. An empty submission yields a nil weight.
func ParseWeight(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	lower := strings.ToLower(s)
	for _, suffix := range []string{"lbs", "lb"} {
		if strings.HasSuffix(lower, suffix) {
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse weight %q: %w", raw, ErrInvalidWeight)
	}
	return &v, nil
}

// FormatWeight renders a stored weight with the unit suffix appended, or an
// empty string when no weight was recorded.
func FormatWeight(lbs *float64) string {
	if lbs == nil {
		return ""
	}
	return strconv.FormatFloat(*lbs, 'f', -1, 64) + " " + WeightUnit
}

// Animal returns the aggregation key for the donation's animal category.
func (d Donation) Animal() string {
	if d.AnimalType == "" {
		return UnknownAnimal
	}
	return d.AnimalType
}
