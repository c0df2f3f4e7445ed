package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vitrine/server/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

const propertyColumns = `
            p.id,
            p.title,
            p.type,
            p.purpose,
            p.price,
            p.bedrooms,
            p.parking,
            p.area,
            p.cover_image,
            p.image_url,
            p.address,
            p.city_id,
            c.name,
            p.code,
            p.suites,
            p.bathrooms,
            p.total_area,
            p.floor,
            p.furnished,
            p.financing,
            p.description,
            COALESCE(p.amenities, '[]') as amenities,
            COALESCE(p.images, '[]') as images,
            p.broker_name,
            p.broker_phone,
            p.broker_email,
            COALESCE(p.created_at, CURRENT_TIMESTAMP) as created_at`

// SelectProperties returns all property rows matching the filter, joined
// with their city name, newest first. Each filter field is applied
// independently as an equality constraint; an unset field constrains
// nothing.
func (d *Database) SelectProperties(filter models.Filter) ([]models.PropertyRow, error) {
	query := `
        SELECT ` + propertyColumns + `
        FROM properties p
        LEFT JOIN cities c ON c.id = p.city_id
        WHERE 1 = 1
    `
	var args []interface{}

	if filter.Purpose != "" {
		query += " AND p.purpose = ?"
		args = append(args, string(filter.Purpose))
	}
	if filter.Type != "" {
		query += " AND p.type = ?"
		args = append(args, filter.Type)
	}
	// CityID is nil when the caller had no usable city value, including
	// malformed input that degraded to "no constraint".
	if filter.CityID != nil {
		query += " AND p.city_id = ?"
		args = append(args, *filter.CityID)
	}

	query += " ORDER BY p.created_at DESC, p.id DESC"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.PropertyRow
	for rows.Next() {
		p, err := scanPropertyRow(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// SelectPropertyByID looks up at most one property by exact identifier
// match. It returns (nil, nil) when no row matches; an identifier that is
// not numeric cannot match any row and is treated the same way.
func (d *Database) SelectPropertyByID(id string) (*models.PropertyRow, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, nil
	}

	query := `
        SELECT ` + propertyColumns + `
        FROM properties p
        LEFT JOIN cities c ON c.id = p.city_id
        WHERE p.id = ?
    `
	rows, err := d.db.Query(query, numericID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	p, err := scanPropertyRow(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SelectCities returns the full city list in store order.
func (d *Database) SelectCities() ([]models.City, error) {
	rows, err := d.db.Query("SELECT id, name FROM cities")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// InsertLead creates exactly one lead row and echoes it back with the
// store-assigned identifier and creation timestamp.
func (d *Database) InsertLead(input models.LeadInput) (models.Lead, error) {
	result, err := d.db.Exec(`
        INSERT INTO leads (name, email, phone, message, property_url)
        VALUES (?, ?, ?, ?, ?)
    `, input.Name, input.Email, input.Phone, input.Message, input.PropertyURL)
	if err != nil {
		return models.Lead{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Lead{}, err
	}

	var lead models.Lead
	err = d.db.QueryRow(`
        SELECT id, name, email, phone, message, property_url, created_at
        FROM leads WHERE id = ?
    `, id).Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Message,
		&lead.PropertyURL, &lead.CreatedAt)
	if err != nil {
		return models.Lead{}, fmt.Errorf("failed to read back inserted lead: %w", err)
	}

	return lead, nil
}

// SelectLeads returns every lead row, most recently created first.
func (d *Database) SelectLeads() ([]models.Lead, error) {
	rows, err := d.db.Query(`
        SELECT id, name, email, phone, message, property_url, created_at
        FROM leads
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var lead models.Lead
		err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone,
			&lead.Message, &lead.PropertyURL, &lead.CreatedAt)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}

// scanPropertyRow scans the propertyColumns select list into a row with
// optional fields.
func scanPropertyRow(rows *sql.Rows) (models.PropertyRow, error) {
	var p models.PropertyRow
	var title, propType, purpose, coverImage, imageURL, address, cityName sql.NullString
	var code, description, brokerName, brokerPhone, brokerEmail sql.NullString
	var amenitiesJSON, imagesJSON string
	var createdAt sql.NullString
	var price, area, totalArea sql.NullFloat64
	var bedrooms, parking, cityID, suites, bathrooms, floor sql.NullInt64
	var furnished, financing sql.NullBool

	err := rows.Scan(
		&p.ID,
		&title,
		&propType,
		&purpose,
		&price,
		&bedrooms,
		&parking,
		&area,
		&coverImage,
		&imageURL,
		&address,
		&cityID,
		&cityName,
		&code,
		&suites,
		&bathrooms,
		&totalArea,
		&floor,
		&furnished,
		&financing,
		&description,
		&amenitiesJSON,
		&imagesJSON,
		&brokerName,
		&brokerPhone,
		&brokerEmail,
		&createdAt,
	)
	if err != nil {
		return models.PropertyRow{}, err
	}

	p.Title = nullStringPtr(title)
	p.Type = nullStringPtr(propType)
	p.Purpose = nullStringPtr(purpose)
	p.CoverImage = nullStringPtr(coverImage)
	p.ImageURL = nullStringPtr(imageURL)
	p.Address = nullStringPtr(address)
	p.CityName = nullStringPtr(cityName)
	p.Code = nullStringPtr(code)
	p.Description = nullStringPtr(description)
	p.BrokerName = nullStringPtr(brokerName)
	p.BrokerPhone = nullStringPtr(brokerPhone)
	p.BrokerEmail = nullStringPtr(brokerEmail)

	if price.Valid {
		v := price.Float64
		p.Price = &v
	}
	if area.Valid {
		v := area.Float64
		p.Area = &v
	}
	if totalArea.Valid {
		v := totalArea.Float64
		p.TotalArea = &v
	}
	if bedrooms.Valid {
		v := int(bedrooms.Int64)
		p.Bedrooms = &v
	}
	if parking.Valid {
		v := int(parking.Int64)
		p.Parking = &v
	}
	if cityID.Valid {
		v := int(cityID.Int64)
		p.CityID = &v
	}
	if suites.Valid {
		v := int(suites.Int64)
		p.Suites = &v
	}
	if bathrooms.Valid {
		v := int(bathrooms.Int64)
		p.Bathrooms = &v
	}
	if floor.Valid {
		v := int(floor.Int64)
		p.Floor = &v
	}
	if furnished.Valid {
		v := furnished.Bool
		p.Furnished = &v
	}
	if financing.Valid {
		v := financing.Bool
		p.Financing = &v
	}

	// Amenity and image lists are stored as JSON text arrays; a broken
	// value degrades to an absent list rather than failing the query.
	json.Unmarshal([]byte(amenitiesJSON), &p.Amenities)
	json.Unmarshal([]byte(imagesJSON), &p.Images)

	p.CreatedAt = parseTimestamp(createdAt)

	return p, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// parseTimestamp accepts RFC3339 and the formats SQLite itself writes for
// CURRENT_TIMESTAMP and driver-bound time values.
func parseTimestamp(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s.String); err == nil {
			return t
		}
	}
	return time.Time{}
}
