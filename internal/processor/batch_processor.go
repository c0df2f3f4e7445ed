package processor

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vitrine/server/config"
	"vitrine/server/internal/database"
	"vitrine/server/internal/models"
	"vitrine/server/internal/queue"
)

// BatchProcessor drains the import queue into the property store, one
// transaction per batch with bounded retries.
type BatchProcessor struct {
	db     *gorm.DB
	logger *logrus.Logger
	config *config.Config
	queue  *queue.PropertyQueue
}

func NewBatchProcessor(db *gorm.DB, queue *queue.PropertyQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	return &BatchProcessor{
		db:     db,
		queue:  queue,
		config: config,
		logger: logger,
	}
}

// Start subscribes the processor to the import queue.
func (p *BatchProcessor) Start() {
	p.queue.Subscribe(func(batch []*models.PropertyRow) error {
		return p.processBatch(batch)
	})
}

// processBatch upserts a single batch inside a transaction, retrying on
// failure up to the configured limit.
func (p *BatchProcessor) processBatch(batch []*models.PropertyRow) error {
	var err error
	for attempt := 0; attempt <= p.config.Import.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch import, attempt %d of %d", attempt, p.config.Import.MaxRetries)
			time.Sleep(time.Duration(p.config.Import.RetryDelay) * time.Second)
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := database.UpsertProperties(tx, batch); err != nil {
				return fmt.Errorf("failed to upsert property batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.Infof("Imported batch of %d properties", len(batch))
			return nil
		}

		p.logger.Errorf("Batch import failed: %v", err)
	}

	return fmt.Errorf("failed to import batch after %d attempts: %w", p.config.Import.MaxRetries, err)
}
