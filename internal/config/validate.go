package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}

	switch c.Backend.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("database.dsn is required for the postgres backend"))
		}
	case DriverFirestore:
		if c.Firestore.ProjectID == "" {
			errs = append(errs, errors.New("firestore.project_id is required for the firestore backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("backend.driver must be %q or %q (got %q)", DriverPostgres, DriverFirestore, c.Backend.Driver))
	}

	if err := c.Storage.validate(); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}

	if c.Mirror.ThumbnailWidth <= 0 {
		errs = append(errs, fmt.Errorf("mirror.thumbnail_width must be > 0 (got %d)", c.Mirror.ThumbnailWidth))
	}

	if c.RateLimit.ItemsPerMinute < 0 || c.RateLimit.MessagesPerMinute < 0 {
		errs = append(errs, errors.New("rate_limit values must be >= 0"))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case StorageLocal:
		if s.Dir == "" {
			return errors.New("dir is required for local storage")
		}
		u, err := url.Parse(s.PublicBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("public_base_url must be an absolute URL (got %q)", s.PublicBaseURL)
		}
	case StorageGCS:
		if s.Bucket == "" {
			return errors.New("bucket is required for gcs storage")
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", StorageLocal, StorageGCS, s.Driver)
	}
	return nil
}

// BlobPrefix returns the path under which the local blob store is served,
// taken from PublicBaseURL. It always ends with a slash.
func (s StorageConfig) BlobPrefix() string {
	u, err := url.Parse(s.PublicBaseURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/"
	}
	p := u.Path
	if p[len(p)-1] != '/' {
		p += "/"
	}
	return p
}
