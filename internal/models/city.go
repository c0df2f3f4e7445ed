package models

// City is immutable reference data used by the location filter and to
// compose a property's location string.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
