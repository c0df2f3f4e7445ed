package api

import (
	"net/url"
	"strconv"

	"vitrine/server/internal/models"
)

// ParseFilter derives catalog filter criteria from navigation query
// parameters. Three parameters are recognized, all optional:
//
//   - "purpose": sets the purpose filter when it names a valid purpose.
//   - "kind": a valid purpose value overrides any purpose set so far
//     (last write wins); any other non-empty value becomes the type
//     filter.
//   - "city": parsed as an integer city id.
//
// Malformed values never produce an error; they degrade to "filter not
// applied".
func ParseFilter(params url.Values) models.Filter {
	var filter models.Filter

	if purpose, ok := models.ParsePurpose(params.Get("purpose")); ok {
		filter.Purpose = purpose
	}

	if kind := params.Get("kind"); kind != "" {
		if purpose, ok := models.ParsePurpose(kind); ok {
			filter.Purpose = purpose
		} else {
			filter.Type = kind
		}
	}

	if city := params.Get("city"); city != "" {
		if id, err := strconv.Atoi(city); err == nil {
			filter.CityID = &id
		}
	}

	return filter
}
