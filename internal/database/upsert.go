package database

import (
	"encoding/json"
	"fmt"

	"vitrine/server/internal/models"

	"gorm.io/gorm"
)

// UpsertProperties writes a batch of property rows inside the given
// transaction. Rows are keyed by listing code: a re-imported code updates
// the existing row in place, rows without a code always insert. The store
// keeps the original created_at on update.
func UpsertProperties(tx *gorm.DB, batch []*models.PropertyRow) error {
	const stmt = `
		INSERT INTO properties
			(title, type, purpose, price, bedrooms, parking, area,
			 cover_image, image_url, address, city_id, code, suites,
			 bathrooms, total_area, floor, furnished, financing,
			 description, amenities, images, broker_name, broker_phone,
			 broker_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			title = excluded.title,
			type = excluded.type,
			purpose = excluded.purpose,
			price = excluded.price,
			bedrooms = excluded.bedrooms,
			parking = excluded.parking,
			area = excluded.area,
			cover_image = excluded.cover_image,
			image_url = excluded.image_url,
			address = excluded.address,
			city_id = excluded.city_id,
			suites = excluded.suites,
			bathrooms = excluded.bathrooms,
			total_area = excluded.total_area,
			floor = excluded.floor,
			furnished = excluded.furnished,
			financing = excluded.financing,
			description = excluded.description,
			amenities = excluded.amenities,
			images = excluded.images,
			broker_name = excluded.broker_name,
			broker_phone = excluded.broker_phone,
			broker_email = excluded.broker_email
	`

	for _, p := range batch {
		amenities, err := json.Marshal(p.Amenities)
		if err != nil {
			return fmt.Errorf("failed to encode amenities: %w", err)
		}
		images, err := json.Marshal(p.Images)
		if err != nil {
			return fmt.Errorf("failed to encode images: %w", err)
		}

		err = tx.Exec(stmt,
			p.Title, p.Type, p.Purpose, p.Price, p.Bedrooms, p.Parking,
			p.Area, p.CoverImage, p.ImageURL, p.Address, p.CityID, p.Code,
			p.Suites, p.Bathrooms, p.TotalArea, p.Floor, p.Furnished,
			p.Financing, p.Description, string(amenities), string(images),
			p.BrokerName, p.BrokerPhone, p.BrokerEmail,
		).Error
		if err != nil {
			return fmt.Errorf("failed to upsert property: %w", err)
		}
	}

	return nil
}
