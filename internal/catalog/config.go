package catalog

import "time"

// DefaultDatasetURL is the Asterank Kepler endpoint limited to 2000 rows.
const DefaultDatasetURL = "http://asterank.com/api/kepler?query={}&limit=2000"

type Config struct {
	DatasetURL    string
	FetchTimeout  time.Duration
	FetchAttempts int
	RetryDelay    time.Duration
}

// DefaultConfig returns a Config pointing at the public Kepler dataset.
func DefaultConfig() Config {
	return Config{
		DatasetURL:    DefaultDatasetURL,
		FetchTimeout:  30 * time.Second,
		FetchAttempts: 3,
		RetryDelay:    time.Second,
	}
}

func (config Config) isLocalFile() bool {
	return !isRemote(config.DatasetURL)
}
