package fire

// maxBatchSize is the backend's hard limit on writes per committed batch.
const maxBatchSize = 500

// Config holds configuration for the Client.
type Config struct {
	// ProjectID is the Google Cloud project to dial. Required by Dial,
	// ignored by New (the supplied client already carries it).
	ProjectID string

	// CredentialsFile is an optional path to a service account key file.
	// When empty (and CredentialsJSON is empty), Application Default
	// Credentials are used.
	CredentialsFile string

	// CredentialsJSON is optional raw service account key JSON.
	// Takes effect only when CredentialsFile is empty.
	CredentialsJSON []byte

	// BatchSize is the number of writes accumulated per underlying write
	// batch before a new one is opened.
	// Default: 500 (the backend limit)
	// Max: 500
	BatchSize int

	// CreatedField and UpdatedField name the managed timestamp fields
	// stamped on writes with the backend's server timestamp.
	// Defaults: "created_at", "updated_at"
	CreatedField string
	UpdatedField string

	// DisableTimestamps turns off managed timestamp stamping entirely.
	DisableTimestamps bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:    maxBatchSize,
		CreatedField: "created_at",
		UpdatedField: "updated_at",
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.BatchSize < 1 {
		c.BatchSize = maxBatchSize
	}
	if c.BatchSize > maxBatchSize {
		c.BatchSize = maxBatchSize
	}
	if c.CreatedField == "" {
		c.CreatedField = "created_at"
	}
	if c.UpdatedField == "" {
		c.UpdatedField = "updated_at"
	}
}
