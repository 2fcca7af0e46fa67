package config

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresSSLMode  string

	// DBIsolation is the isolation level each write unit of work runs at.
	DBIsolation     string
	DBMaxOpenConns  int
	HTTPPort        string
	WriteWorkers    int
	LogLevel        logrus.Level
	MigrationsOnRun bool
}

var isolationLevels = map[string]sql.IsolationLevel{
	"read-committed":  sql.LevelReadCommitted,
	"repeatable-read": sql.LevelRepeatableRead,
	"serializable":    sql.LevelSerializable,
}

func ProcessEnvironmentVariables() (*Config, error) {
	envFile := viper.New()
	envFile.AutomaticEnv()
	envFile.SetDefault("env_file", ".env")
	if err := godotenv.Load(envFile.GetString("env_file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("postgres_address", "localhost")
	v.SetDefault("postgres_port", "5433")
	v.SetDefault("postgres_db", "postgres")
	v.SetDefault("postgres_username", "postgres")
	v.SetDefault("postgres_password", "testpassword")
	v.SetDefault("postgres_sslmode", "disable")
	v.SetDefault("db_isolation", "read-committed")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("http_port", "9446")
	v.SetDefault("write_workers", 1)
	v.SetDefault("log_level", "info")
	v.SetDefault("migrations_on_run", true)

	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	env := Config{
		PostgresAddress:  v.GetString("postgres_address"),
		PostgresPort:     v.GetString("postgres_port"),
		PostgresDB:       v.GetString("postgres_db"),
		PostgresUsername: v.GetString("postgres_username"),
		PostgresPassword: v.GetString("postgres_password"),
		PostgresSSLMode:  v.GetString("postgres_sslmode"),
		DBIsolation:      strings.ToLower(v.GetString("db_isolation")),
		DBMaxOpenConns:   v.GetInt("db_max_open_conns"),
		HTTPPort:         v.GetString("http_port"),
		WriteWorkers:     v.GetInt("write_workers"),
		LogLevel:         level,
		MigrationsOnRun:  v.GetBool("migrations_on_run"),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Isolation(); err != nil {
		errs = append(errs, err)
	}
	if c.WriteWorkers < 1 {
		errs = append(errs, fmt.Errorf("WRITE_WORKERS must be at least 1, got %d", c.WriteWorkers))
	}
	if c.DBMaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1, got %d", c.DBMaxOpenConns))
	}
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT must not be empty"))
	}
	return errors.Join(errs...)
}

func (c *Config) Isolation() (sql.IsolationLevel, error) {
	level, ok := isolationLevels[c.DBIsolation]
	if !ok {
		return sql.LevelDefault, fmt.Errorf("DB_ISOLATION %q is not one of read-committed, repeatable-read, serializable", c.DBIsolation)
	}
	return level, nil
}

func (c *Config) ConnectionString() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:   c.PostgresAddress + ":" + c.PostgresPort,
		Path:   "/" + c.PostgresDB,
	}
	query := url.Values{}
	query.Set("sslmode", c.PostgresSSLMode)
	dsn.RawQuery = query.Encode()
	return dsn.String()
}
