package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/pinmoji/internal/domain"
	"github.com/heartmarshall/pinmoji/internal/mirror"
)

// Config holds seeder settings.
type Config struct {
	FixturePath    string `yaml:"fixture_path"    env:"SEEDER_FIXTURE_PATH"`
	UserID         string `yaml:"user_id"         env:"SEEDER_USER_ID"         env-default:"seeder"`
	ThumbnailWidth int    `yaml:"thumbnail_width" env:"SEEDER_THUMBNAIL_WIDTH" env-default:"25"`
	DryRun         bool   `yaml:"dry_run"         env:"SEEDER_DRY_RUN"`
}

// Fixture is the demo data file: a list of pins with their room chatter.
type Fixture struct {
	Pins []Pin `yaml:"pins"`
}

// Pin is one demo item.
type Pin struct {
	Emoji     string           `yaml:"emoji"`
	Latitude  float64          `yaml:"latitude"`
	Longitude float64          `yaml:"longitude"`
	Picture   string           `yaml:"picture"`
	UserID    string           `yaml:"user_id"`
	Likes     int              `yaml:"likes"`
	Dislikes  int              `yaml:"dislikes"`
	Messages  []FixtureMessage `yaml:"messages"`
}

// FixtureMessage is a chat line posted to the pin's room.
type FixtureMessage struct {
	Body        string `yaml:"body"`
	UserID      string `yaml:"user_id"`
	DisplayName string `yaml:"display_name"`
}

func (p Pin) input() mirror.AddItemInput {
	return mirror.AddItemInput{
		Emoji:       p.Emoji,
		Coordinates: domain.Coordinates{Latitude: p.Latitude, Longitude: p.Longitude},
		Picture:     mirror.Picture{URI: p.Picture},
	}
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	return &cfg, nil
}

// LoadFixture reads the pins file.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return nil, fmt.Errorf("seeder fixture: path not configured")
	}
	var f Fixture
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("seeder fixture: read %s: %w", path, err)
	}
	return &f, nil
}
