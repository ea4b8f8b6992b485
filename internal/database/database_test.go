package database

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite enables foreign keys",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite default path",
			config:   DatabaseConfig{},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite keeps existing query",
			config:   DatabaseConfig{Driver: "sqlite", Path: "file:test.db?cache=shared"},
			expected: "file:test.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "sqlite respects explicit pragma",
			config:   DatabaseConfig{Driver: "sqlite3", Path: "app.db?_fk=0"},
			expected: "app.db?_fk=0",
		},
		{
			name:     "sqlite uri with relative path",
			config:   DatabaseConfig{Driver: "sqlite", Path: "sqlite:///app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite uri with absolute path",
			config:   DatabaseConfig{Driver: "sqlite", Path: "sqlite:////var/lib/pizza/app.db"},
			expected: "/var/lib/pizza/app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite uri without path",
			config:   DatabaseConfig{Driver: "sqlite", Path: "sqlite://"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "postgres",
			config:   DatabaseConfig{Driver: "postgresql", Host: "db", Port: "5432", User: "u", Password: "p", Name: "pizza", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=pizza port=5432 sslmode=disable",
		},
		{
			name:     "mysql",
			config:   DatabaseConfig{Driver: "MySQL", Host: "db", Port: "3306", User: "u", Password: "p", Name: "pizza"},
			expected: "u:p@tcp(db:3306)/pizza?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(db))

	seeded, err := Seed(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, seeded)

	var restaurants, pizzas, offers int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&offers)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)
	assert.Equal(t, int64(3), offers)

	// Seeding twice is a no-op
	seeded, err = Seed(context.Background(), db)
	require.NoError(t, err)
	assert.False(t, seeded)
	db.Model(&models.Restaurant{}).Count(&restaurants)
	assert.Equal(t, int64(3), restaurants)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	err = db.Create(&models.RestaurantPizza{Price: 10, RestaurantID: 404, PizzaID: 404}).Error
	assert.Error(t, err, "insert with dangling foreign keys must fail")
}
