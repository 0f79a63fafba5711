package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/exodash/exodash/internal/exoplanet"
	"github.com/exodash/exodash/internal/logging"
)

// Manager owns the planet table loaded at startup. The table is read-only
// after InitManager returns.
type Manager struct {
	source      string
	records     []exoplanet.PlanetRecord
	bounds      exoplanet.Bounds
	summary     exoplanet.Summary
	lastUpdated time.Time
	isLocalFile bool
	mu          sync.RWMutex
}

// InitManager loads the dataset named by config.DatasetURL, which may be a
// URL or a local file path.
func InitManager(ctx context.Context, config Config, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	isLocalFile := config.isLocalFile()

	records, err := loadDataset(ctx, config.DatasetURL, isLocalFile, newFetcher(config, logger))
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		source:      config.DatasetURL,
		isLocalFile: isLocalFile,
	}
	manager.setRecords(records)

	logging.LogOperation(logger, "dataset_loaded",
		slog.String("source", config.DatasetURL),
		slog.Int("records", len(records)),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "catalog"))

	return manager, nil
}

// NewManagerFromRecords builds a Manager around a copy of records and
// classifies the copy.
func NewManagerFromRecords(records []exoplanet.PlanetRecord) *Manager {
	table := append([]exoplanet.PlanetRecord(nil), records...)
	exoplanet.ClassifyAll(table)

	manager := &Manager{source: "memory", isLocalFile: true}
	manager.setRecords(table)
	return manager
}

func (manager *Manager) setRecords(records []exoplanet.PlanetRecord) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.records = records
	manager.bounds = exoplanet.RadiusBounds(records)
	manager.summary = exoplanet.Summarize(records)
	manager.lastUpdated = time.Now()
}

// Records returns the loaded table. Callers must not modify it.
func (manager *Manager) Records() []exoplanet.PlanetRecord {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.records
}

func (manager *Manager) Bounds() exoplanet.Bounds {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.bounds
}

func (manager *Manager) Summary() exoplanet.Summary {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.summary
}

func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

func (manager *Manager) Source() string {
	return manager.source
}

func (manager *Manager) IsLocalFile() bool {
	return manager.isLocalFile
}

// Filter narrows the table to the records inside rr with category c.
func (manager *Manager) Filter(rr exoplanet.RadiusRange, c exoplanet.SizeCategory) []exoplanet.PlanetRecord {
	return exoplanet.Filter(manager.Records(), rr, c)
}
