package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	Backend  BackendConfig
	Tasks    TasksConfig
	Store    StoreConfig
	Postgres PostgresConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"localhost"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// BackendConfig points the web page at the REST store.
type BackendConfig struct {
	BaseURL        string        `env:"BACKEND_BASE_URL" env-default:"http://localhost:3004"`
	RequestTimeout time.Duration `env:"BACKEND_REQUEST_TIMEOUT" env-default:"10s"`
}

type TasksConfig struct {
	Thumbnail       string `env:"TASKS_THUMBNAIL" env-default:"assets/images/cat.svg"`
	CreatedAtLayout string `env:"TASKS_CREATED_AT_LAYOUT" env-default:"1/2/2006, 3:04:05 PM"`
}

// StoreConfig configures the REST store. It listens on HTTP_HOST
// with its own port.
type StoreConfig struct {
	Port       string `env:"STORE_PORT" env-default:"3004"`
	Driver     string `env:"STORE_DRIVER" env-default:"sqlite"`
	SQLitePath string `env:"STORE_SQLITE_PATH" env-default:"tasks.db"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-default:"postgres"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE" env-default:"tasks"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}
