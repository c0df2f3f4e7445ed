package models

// PropertyPayload is the wire shape for imported and seeded properties.
// Every field is optional; defaulting happens at read time, not at write
// time.
type PropertyPayload struct {
	Title       *string  `json:"title,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Purpose     *string  `json:"purpose,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty"`
	Parking     *int     `json:"parking,omitempty"`
	Area        *float64 `json:"area,omitempty"`
	CoverImage  *string  `json:"cover_image,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Address     *string  `json:"address,omitempty"`
	CityID      *int     `json:"city_id,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Suites      *int     `json:"suites,omitempty"`
	Bathrooms   *int     `json:"bathrooms,omitempty"`
	TotalArea   *float64 `json:"total_area,omitempty"`
	Floor       *int     `json:"floor,omitempty"`
	Furnished   *bool    `json:"furnished,omitempty"`
	Financing   *bool    `json:"financing,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
	BrokerName  *string  `json:"broker_name,omitempty"`
	BrokerPhone *string  `json:"broker_phone,omitempty"`
	BrokerEmail *string  `json:"broker_email,omitempty"`
}

// Row converts the payload to a store row.
func (p PropertyPayload) Row() *PropertyRow {
	return &PropertyRow{
		Title:       p.Title,
		Type:        p.Type,
		Purpose:     p.Purpose,
		Price:       p.Price,
		Bedrooms:    p.Bedrooms,
		Parking:     p.Parking,
		Area:        p.Area,
		CoverImage:  p.CoverImage,
		ImageURL:    p.ImageURL,
		Address:     p.Address,
		CityID:      p.CityID,
		Code:        p.Code,
		Suites:      p.Suites,
		Bathrooms:   p.Bathrooms,
		TotalArea:   p.TotalArea,
		Floor:       p.Floor,
		Furnished:   p.Furnished,
		Financing:   p.Financing,
		Description: p.Description,
		Amenities:   p.Amenities,
		Images:      p.Images,
		BrokerName:  p.BrokerName,
		BrokerPhone: p.BrokerPhone,
		BrokerEmail: p.BrokerEmail,
	}
}

// SeedData is the on-disk bootstrap set loaded into an empty store.
type SeedData struct {
	Cities     []City            `json:"cities"`
	Properties []PropertyPayload `json:"properties"`
}
