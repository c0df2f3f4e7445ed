package catalog

import (
	"os"

	"vitrine/server/internal/models"

	"github.com/sirupsen/logrus"
)

// Store is the queryable row store the catalog reads from and writes to.
// It is injected so the data-access layer can be substituted in tests.
type Store interface {
	SelectProperties(filter models.Filter) ([]models.PropertyRow, error)
	SelectPropertyByID(id string) (*models.PropertyRow, error)
	SelectCities() ([]models.City, error)
	InsertLead(input models.LeadInput) (models.Lead, error)
	SelectLeads() ([]models.Lead, error)
}

// Service exposes the site's query functions over a row store.
type Service struct {
	store  Store
	logger *logrus.Logger
}

func NewService(store Store, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Service{
		store:  store,
		logger: logger,
	}
}

// ListProperties returns the catalog items matching the filter, newest
// first. An empty result is an empty list, not an error.
func (s *Service) ListProperties(filter models.Filter) ([]models.ListItem, error) {
	rows, err := s.store.SelectProperties(filter)
	if err != nil {
		return nil, &QueryError{Op: "list properties", Err: err}
	}

	items := make([]models.ListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, RowToListItem(row))
	}
	return items, nil
}

// GetProperty returns the detail record for one identifier, or (nil, nil)
// when no property matches. Not-found is a normal result, not an error.
func (s *Service) GetProperty(id string) (*models.PropertyDetail, error) {
	row, err := s.store.SelectPropertyByID(id)
	if err != nil {
		return nil, &QueryError{Op: "get property", Err: err}
	}
	if row == nil {
		return nil, nil
	}

	detail := RowToDetail(*row)
	return &detail, nil
}

// ListCities returns the full city list in store order.
func (s *Service) ListCities() ([]models.City, error) {
	cities, err := s.store.SelectCities()
	if err != nil {
		return nil, &QueryError{Op: "list cities", Err: err}
	}
	if cities == nil {
		cities = []models.City{}
	}
	return cities, nil
}

// SubmitLead inserts exactly one lead row and returns it as echoed by the
// store. Input is forwarded as-is; empty contact fields are accepted.
func (s *Service) SubmitLead(input models.LeadInput) (models.Lead, error) {
	lead, err := s.store.InsertLead(input)
	if err != nil {
		return models.Lead{}, &SubmissionError{Err: err}
	}

	s.logger.WithField("lead_id", lead.ID).Info("Lead submitted")
	return lead, nil
}

// ListLeads returns every lead, most recently created first.
func (s *Service) ListLeads() ([]models.Lead, error) {
	leads, err := s.store.SelectLeads()
	if err != nil {
		return nil, &QueryError{Op: "list leads", Err: err}
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, nil
}
