package models

import "time"

// PropertyRow is a raw row from the properties table, joined with the city
// name when one is linked. Every column is optional; the catalog mapper is
// responsible for defaulting.
type PropertyRow struct {
	ID          int64
	Title       *string
	Type        *string
	Purpose     *string
	Price       *float64
	Bedrooms    *int
	Parking     *int
	Area        *float64
	CoverImage  *string
	ImageURL    *string
	Address     *string
	CityID      *int
	CityName    *string
	Code        *string
	Suites      *int
	Bathrooms   *int
	TotalArea   *float64
	Floor       *int
	Furnished   *bool
	Financing   *bool
	Description *string
	Amenities   []string
	Images      []string
	BrokerName  *string
	BrokerPhone *string
	BrokerEmail *string
	CreatedAt   time.Time
}

// ListItem is the fully-populated summary shape used by the catalog page.
// Every field is always set.
type ListItem struct {
	ID         string  `json:"id"`
	CoverImage string  `json:"cover_image"`
	Title      string  `json:"title"`
	Type       string  `json:"type"`
	Location   string  `json:"location"`
	Price      float64 `json:"price"`
	Purpose    Purpose `json:"purpose"`
	Bedrooms   int     `json:"bedrooms"`
	Parking    int     `json:"parking"`
	Area       float64 `json:"area"`
}

// PropertyDetail extends ListItem with the attributes shown on a property's
// own page. Images always holds at least one entry.
type PropertyDetail struct {
	ListItem
	Code        *string  `json:"code,omitempty"`
	Suites      *int     `json:"suites,omitempty"`
	Bathrooms   *int     `json:"bathrooms,omitempty"`
	TotalArea   *float64 `json:"total_area,omitempty"`
	Floor       *int     `json:"floor,omitempty"`
	Furnished   *bool    `json:"furnished,omitempty"`
	Financing   *bool    `json:"financing,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images"`
	Broker      *Broker  `json:"broker,omitempty"`
}

// Broker is the contact block attached to a property listing.
type Broker struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}
