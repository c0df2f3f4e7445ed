package api

import (
	"net/url"
	"testing"

	"vitrine/server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	cityThree := 3

	tests := []struct {
		name     string
		params   url.Values
		expected models.Filter
	}{
		{
			name:     "No parameters",
			params:   url.Values{},
			expected: models.Filter{},
		},
		{
			name:     "Explicit purpose",
			params:   url.Values{"purpose": {"sale"}},
			expected: models.Filter{Purpose: models.PurposeSale},
		},
		{
			name:     "Kind holding a purpose value",
			params:   url.Values{"kind": {"rental"}},
			expected: models.Filter{Purpose: models.PurposeRental},
		},
		{
			name:     "Kind holding a type value",
			params:   url.Values{"kind": {"apartamento"}},
			expected: models.Filter{Type: "apartamento"},
		},
		{
			name:     "Kind purpose overrides explicit purpose",
			params:   url.Values{"kind": {"rental"}, "purpose": {"sale"}},
			expected: models.Filter{Purpose: models.PurposeRental},
		},
		{
			name:     "Kind type keeps explicit purpose",
			params:   url.Values{"kind": {"casa"}, "purpose": {"rental"}},
			expected: models.Filter{Type: "casa", Purpose: models.PurposeRental},
		},
		{
			name:     "Invalid explicit purpose is ignored",
			params:   url.Values{"purpose": {"anything"}},
			expected: models.Filter{},
		},
		{
			name:     "Numeric city",
			params:   url.Values{"city": {"3"}},
			expected: models.Filter{CityID: &cityThree},
		},
		{
			name:     "Non-numeric city degrades to no constraint",
			params:   url.Values{"city": {"abc"}},
			expected: models.Filter{},
		},
		{
			name:   "All three combined",
			params: url.Values{"kind": {"cobertura"}, "purpose": {"sale"}, "city": {"3"}},
			expected: models.Filter{
				Type:    "cobertura",
				Purpose: models.PurposeSale,
				CityID:  &cityThree,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ParseFilter(tt.params)
			assert.Equal(t, tt.expected, filter)
			assert.Equal(t, tt.expected.IsZero(), filter.IsZero())
		})
	}
}
