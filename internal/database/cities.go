package database

import (
	"fmt"

	"vitrine/server/internal/models"
)

// InsertCities inserts reference cities with their explicit identifiers,
// skipping names that already exist.
func (d *Database) InsertCities(cities []models.City) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO cities (id, name) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	for _, city := range cities {
		if _, err := stmt.Exec(city.ID, city.Name); err != nil {
			return fmt.Errorf("failed to insert city: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// CountCities returns the number of city rows.
func (d *Database) CountCities() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM cities").Scan(&count)
	return count, err
}

// CountProperties returns the number of property rows.
func (d *Database) CountProperties() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM properties").Scan(&count)
	return count, err
}
