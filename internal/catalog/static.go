package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/exodash/exodash/internal/exoplanet"
)

func rawDataset(ctx context.Context, source string, isLocalFile bool, f *fetcher) ([]byte, error) {
	if isLocalFile {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local dataset file: %w", err)
		}
		return b, nil
	}
	return f.fetch(ctx, source)
}

// parseDataset decodes the upstream JSON array and classifies every record.
func parseDataset(b []byte) ([]exoplanet.PlanetRecord, error) {
	var records []exoplanet.PlanetRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("error parsing dataset: %w", err)
	}
	exoplanet.ClassifyAll(records)
	return records, nil
}

// loadDataset loads and parses the dataset from either a URL or a local file
func loadDataset(ctx context.Context, source string, isLocalFile bool, f *fetcher) ([]exoplanet.PlanetRecord, error) {
	b, err := rawDataset(ctx, source, isLocalFile, f)
	if err != nil {
		return nil, err
	}
	return parseDataset(b)
}
