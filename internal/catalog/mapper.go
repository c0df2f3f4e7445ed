package catalog

import (
	"strconv"
	"strings"

	"vitrine/server/internal/models"
)

// Placeholders used when a row carries no presentable value.
const (
	placeholderImage = "/placeholder.svg"
	placeholderTitle = "Property"
)

// RowToListItem maps a raw property row to its catalog summary. The
// mapping is total: every output field is set, with absent source values
// replaced by explicit defaults. Numeric fields default to 0 and the
// purpose defaults to sale.
func RowToListItem(row models.PropertyRow) models.ListItem {
	item := models.ListItem{
		ID:         strconv.FormatInt(row.ID, 10),
		CoverImage: placeholderImage,
		Title:      placeholderTitle,
		Purpose:    models.PurposeSale,
	}

	if row.CoverImage != nil {
		item.CoverImage = *row.CoverImage
	} else if row.ImageURL != nil {
		item.CoverImage = *row.ImageURL
	}
	if row.Title != nil {
		item.Title = *row.Title
	}
	if row.Type != nil {
		item.Type = *row.Type
	}
	if row.Purpose != nil {
		if purpose, ok := models.ParsePurpose(*row.Purpose); ok {
			item.Purpose = purpose
		}
	}
	if row.Price != nil {
		item.Price = *row.Price
	}
	if row.Bedrooms != nil {
		item.Bedrooms = *row.Bedrooms
	}
	if row.Parking != nil {
		item.Parking = *row.Parking
	}
	if row.Area != nil {
		item.Area = *row.Area
	}

	var locationParts []string
	if row.Address != nil && *row.Address != "" {
		locationParts = append(locationParts, *row.Address)
	}
	if row.CityName != nil && *row.CityName != "" {
		locationParts = append(locationParts, *row.CityName)
	}
	item.Location = strings.Join(locationParts, ", ")

	return item
}

// RowToDetail maps a raw property row to its detail shape. The base fields
// always come from RowToListItem, so a property renders identically in the
// catalog and on its own page. The image list is never empty: it falls
// back to a single-element list built from the mapped cover image.
func RowToDetail(row models.PropertyRow) models.PropertyDetail {
	detail := models.PropertyDetail{
		ListItem:    RowToListItem(row),
		Code:        row.Code,
		Suites:      row.Suites,
		Bathrooms:   row.Bathrooms,
		TotalArea:   row.TotalArea,
		Floor:       row.Floor,
		Furnished:   row.Furnished,
		Financing:   row.Financing,
		Description: row.Description,
		Amenities:   row.Amenities,
	}

	if len(row.Images) > 0 {
		detail.Images = row.Images
	} else {
		detail.Images = []string{detail.CoverImage}
	}

	if row.BrokerName != nil || row.BrokerPhone != nil || row.BrokerEmail != nil {
		detail.Broker = &models.Broker{
			Name:  row.BrokerName,
			Phone: row.BrokerPhone,
			Email: row.BrokerEmail,
		}
	}

	return detail
}
