package database

import (
	"path/filepath"
	"testing"

	"vitrine/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	t.Cleanup(func() { db.Close() })
	return db
}

func insertCity(t *testing.T, db *Database, id int, name string) {
	t.Helper()
	_, err := db.GetDB().Exec("INSERT INTO cities (id, name) VALUES (?, ?)", id, name)
	require.NoError(t, err)
}

func insertProperty(t *testing.T, db *Database, title, purpose, propType string, cityID interface{}, createdAt string) int64 {
	t.Helper()
	result, err := db.GetDB().Exec(`
		INSERT INTO properties (title, purpose, type, city_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, title, purpose, propType, cityID, createdAt)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestSelectProperties_PurposeFilter(t *testing.T) {
	db := setupTestDB(t)
	insertProperty(t, db, "Casa A", "sale", "casa", nil, "2025-01-01 10:00:00")
	insertProperty(t, db, "Apto B", "rental", "apartamento", nil, "2025-01-02 10:00:00")
	insertProperty(t, db, "Apto C", "rental", "apartamento", nil, "2025-01-03 10:00:00")

	rows, err := db.SelectProperties(models.Filter{Purpose: models.PurposeRental})
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "rental", *row.Purpose)
	}

	// No filter returns everything
	rows, err = db.SelectProperties(models.Filter{})
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSelectProperties_EmptyResultIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	insertProperty(t, db, "Casa A", "sale", "casa", nil, "2025-01-01 10:00:00")

	rows, err := db.SelectProperties(models.Filter{Purpose: models.PurposeRental})
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSelectProperties_TypeFilter(t *testing.T) {
	db := setupTestDB(t)
	insertProperty(t, db, "Casa A", "sale", "casa", nil, "2025-01-01 10:00:00")
	insertProperty(t, db, "Apto B", "sale", "apartamento", nil, "2025-01-02 10:00:00")

	rows, err := db.SelectProperties(models.Filter{Type: "apartamento"})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Apto B", *rows[0].Title)
}

func TestSelectProperties_CityFilter(t *testing.T) {
	db := setupTestDB(t)
	insertCity(t, db, 1, "Florianópolis")
	insertCity(t, db, 2, "São José")
	insertProperty(t, db, "Casa A", "sale", "casa", 1, "2025-01-01 10:00:00")
	insertProperty(t, db, "Casa B", "sale", "casa", 2, "2025-01-02 10:00:00")

	cityID := 1
	rows, err := db.SelectProperties(models.Filter{CityID: &cityID})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Casa A", *rows[0].Title)
	assert.Equal(t, "Florianópolis", *rows[0].CityName)

	// A nil city id applies no city constraint; this is the degraded
	// form malformed input parses to.
	rows, err = db.SelectProperties(models.Filter{CityID: nil})
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSelectProperties_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	insertProperty(t, db, "Oldest", "sale", "casa", nil, "2025-01-01 10:00:00")
	insertProperty(t, db, "Newest", "sale", "casa", nil, "2025-03-01 10:00:00")
	insertProperty(t, db, "Middle", "sale", "casa", nil, "2025-02-01 10:00:00")

	rows, err := db.SelectProperties(models.Filter{})
	assert.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Newest", *rows[0].Title)
	assert.Equal(t, "Middle", *rows[1].Title)
	assert.Equal(t, "Oldest", *rows[2].Title)
}

func TestSelectPropertyByID(t *testing.T) {
	db := setupTestDB(t)
	insertCity(t, db, 1, "Florianópolis")
	_, err := db.GetDB().Exec(`
		INSERT INTO properties
			(title, purpose, type, city_id, code, amenities, images,
			 broker_name, broker_phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, "Apto Centro", "rental", "apartamento", 1, "VT-001",
		`["piscina","academia"]`, `["a.jpg","b.jpg"]`,
		"Carlos", "48988887777", "2025-01-01 10:00:00")
	require.NoError(t, err)

	row, err := db.SelectPropertyByID("1")
	assert.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Apto Centro", *row.Title)
	assert.Equal(t, "Florianópolis", *row.CityName)
	assert.Equal(t, "VT-001", *row.Code)
	assert.Equal(t, []string{"piscina", "academia"}, row.Amenities)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, row.Images)
	assert.Equal(t, "Carlos", *row.BrokerName)
	assert.Equal(t, "48988887777", *row.BrokerPhone)
	assert.Nil(t, row.BrokerEmail)
}

func TestSelectPropertyByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	row, err := db.SelectPropertyByID("999")
	assert.NoError(t, err)
	assert.Nil(t, row)

	// An identifier that is not numeric cannot match any row
	row, err = db.SelectPropertyByID("abc")
	assert.NoError(t, err)
	assert.Nil(t, row)
}

func TestSelectCities(t *testing.T) {
	db := setupTestDB(t)
	insertCity(t, db, 1, "Florianópolis")
	insertCity(t, db, 2, "São José")

	cities, err := db.SelectCities()
	assert.NoError(t, err)
	assert.Equal(t, []models.City{
		{ID: 1, Name: "Florianópolis"},
		{ID: 2, Name: "São José"},
	}, cities)
}

func TestInsertLead_EchoesStoredRow(t *testing.T) {
	db := setupTestDB(t)

	lead, err := db.InsertLead(models.LeadInput{
		Name:        "Ana",
		Email:       "ana@x.com",
		Phone:       "48999999999",
		Message:     "",
		PropertyURL: "https://site/imovel/42",
	})

	assert.NoError(t, err)
	assert.NotZero(t, lead.ID)
	assert.Equal(t, "Ana", lead.Name)
	assert.Equal(t, "ana@x.com", lead.Email)
	assert.Equal(t, "48999999999", lead.Phone)
	assert.Equal(t, "", lead.Message)
	assert.Equal(t, "https://site/imovel/42", lead.PropertyURL)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestSelectLeads_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.GetDB().Exec(`
		INSERT INTO leads (name, created_at) VALUES
			('First', '2025-01-01 10:00:00'),
			('Second', '2025-02-01 10:00:00')
	`)
	require.NoError(t, err)

	// A freshly submitted lead lists before everything already stored.
	_, err = db.InsertLead(models.LeadInput{Name: "Ana"})
	require.NoError(t, err)

	leads, err := db.SelectLeads()
	assert.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, "Ana", leads[0].Name)
	assert.Equal(t, "Second", leads[1].Name)
	assert.Equal(t, "First", leads[2].Name)
}

func TestInsertLead_AcceptsEmptyFields(t *testing.T) {
	db := setupTestDB(t)

	lead, err := db.InsertLead(models.LeadInput{})
	assert.NoError(t, err)
	assert.NotZero(t, lead.ID)
	assert.Equal(t, "", lead.Name)
}
