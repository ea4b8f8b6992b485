package database

import (
	"fmt"
	"strings"
)

// Supported driver names
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (sqlite, postgres, mysql)
	Driver string

	// Server-based configuration (PostgreSQL, MySQL)
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration, a file path or ":memory:"
	Path string
}

// String returns a string representation with sensitive data masked
func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// NormalizedDriver returns the lower-cased driver with aliases resolved
func (c DatabaseConfig) NormalizedDriver() string {
	switch driver := strings.ToLower(c.Driver); driver {
	case "", "sqlite3":
		return DriverSQLite
	case "postgresql":
		return DriverPostgres
	default:
		return driver
	}
}

// DSN builds a Data Source Name string based on the driver
func (c DatabaseConfig) DSN() string {
	switch c.NormalizedDriver() {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name)
	case DriverSQLite:
		return sqliteDSN(c.Path)
	default:
		return ""
	}
}

// sqliteURIScheme prefixes SQLAlchemy style URIs such as sqlite:///app.db
const sqliteURIScheme = "sqlite://"

// sqliteDSN turns on foreign key enforcement for every connection opened on path.
// A sqlite:/// URI is reduced to its path: three slashes give a relative path, four an absolute one.
func sqliteDSN(path string) string {
	if rest, ok := strings.CutPrefix(path, sqliteURIScheme); ok {
		path = strings.TrimPrefix(rest, "/")
	}
	if path == "" {
		path = "app.db"
	}
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + "_foreign_keys=on"
}
