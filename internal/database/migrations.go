package database

import "fmt"

func (d *Database) RunMigrations() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS cities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create cities table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT,
			type TEXT,
			purpose TEXT,
			price REAL,
			bedrooms INTEGER,
			parking INTEGER,
			area REAL,
			cover_image TEXT,
			image_url TEXT,
			address TEXT,
			city_id INTEGER REFERENCES cities(id),
			code TEXT UNIQUE,
			suites INTEGER,
			bathrooms INTEGER,
			total_area REAL,
			floor INTEGER,
			furnished BOOLEAN,
			financing BOOLEAN,
			description TEXT,
			amenities TEXT,
			images TEXT,
			broker_name TEXT,
			broker_phone TEXT,
			broker_email TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create properties table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS leads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			property_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create leads table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_purpose
		ON properties(purpose);
	`)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_city
		ON properties(city_id);
	`)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_created
		ON properties(created_at);
	`)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_leads_created
		ON leads(created_at);
	`)
	if err != nil {
		return err
	}

	return nil
}
