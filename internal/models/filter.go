package models

// Purpose classifies a listing as a sale or a rental.
type Purpose string

const (
	PurposeSale   Purpose = "sale"
	PurposeRental Purpose = "rental"
)

// ParsePurpose returns the Purpose for s and whether s named a valid one.
func ParsePurpose(s string) (Purpose, bool) {
	switch Purpose(s) {
	case PurposeSale:
		return PurposeSale, true
	case PurposeRental:
		return PurposeRental, true
	}
	return "", false
}

// Filter holds the optional catalog constraints. A zero value means
// unconstrained; each field is applied independently as an equality match.
// CityID is nil when no usable city filter was given (including malformed
// input, which degrades to "no constraint").
type Filter struct {
	Type    string
	Purpose Purpose
	CityID  *int
}

// IsZero reports whether no constraint is set.
func (f Filter) IsZero() bool {
	return f.Type == "" && f.Purpose == "" && f.CityID == nil
}
