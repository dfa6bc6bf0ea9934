package config

import (
	"time"
)

// Backend drivers.
const (
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"
)

// Blob storage drivers.
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Backend   BackendConfig   `yaml:"backend"`
	Database  DatabaseConfig  `yaml:"database"`
	Firestore FirestoreConfig `yaml:"firestore"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Mirror    MirrorConfig    `yaml:"mirror"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig caps mutating requests per user (or per host when signed
// out). Zero disables a limit, so the defaults live in Defaults rather than
// in env-default tags.
type RateLimitConfig struct {
	ItemsPerMinute    int `yaml:"items_per_minute"    env:"RATE_LIMIT_ITEMS_PER_MINUTE"`
	MessagesPerMinute int `yaml:"messages_per_minute" env:"RATE_LIMIT_MESSAGES_PER_MINUTE"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings. WriteTimeout does not apply to
// the event stream.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// BackendConfig selects the document store.
type BackendConfig struct {
	Driver string `yaml:"driver" env:"BACKEND_DRIVER" env-default:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"`
}

// FirestoreConfig holds Cloud Firestore settings. An empty CredentialsFile
// uses application default credentials.
type FirestoreConfig struct {
	ProjectID       string `yaml:"project_id"       env:"FIRESTORE_PROJECT_ID"`
	DatabaseID      string `yaml:"database_id"      env:"FIRESTORE_DATABASE_ID"      env-default:"(default)"`
	CredentialsFile string `yaml:"credentials_file" env:"FIRESTORE_CREDENTIALS_FILE"`
}

// StorageConfig selects and configures the picture blob store.
type StorageConfig struct {
	Driver          string `yaml:"driver"           env:"STORAGE_DRIVER"           env-default:"local"`
	Dir             string `yaml:"dir"              env:"STORAGE_DIR"              env-default:"./data/blobs"`
	PublicBaseURL   string `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"  env-default:"http://127.0.0.1:8080/blobs"`
	Bucket          string `yaml:"bucket"           env:"STORAGE_BUCKET"`
	CredentialsFile string `yaml:"credentials_file" env:"STORAGE_CREDENTIALS_FILE"`
}

// AuthConfig holds ID token settings. IDToken, when set, signs the session
// in at startup.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"pinmoji"`
	IDToken   string `yaml:"id_token"   env:"AUTH_ID_TOKEN"`
}

// MirrorConfig holds sync mirror settings.
type MirrorConfig struct {
	ThumbnailWidth int    `yaml:"thumbnail_width" env:"MIRROR_THUMBNAIL_WIDTH" env-default:"25"`
	DefaultRoom    string `yaml:"default_room"    env:"MIRROR_DEFAULT_ROOM"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Defaults returns the values of fields whose zero value is meaningful.
// cleanenv applies env-default to any field left zero, which would turn an
// explicit false or 0 back into the default.
func Defaults() Config {
	return Config{
		Database:  DatabaseConfig{MigrateOnStart: true},
		RateLimit: RateLimitConfig{ItemsPerMinute: 10, MessagesPerMinute: 60},
	}
}
