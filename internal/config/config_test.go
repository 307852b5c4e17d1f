package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "reservation"
password = "secret"
dbname = "reservations"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = false
service_name = "reservation-service"
path = "/metrics"

[venue]
hours = [[36, 56], [132, 152]]

[venue.table_sizes]
1 = 1
2 = 4
4 = 4
8 = 2

[[venue.menu]]
id = 1
name = "Classic Burger"
description = "Beef patty with cheese"
price = 12.5
prep_minutes = 10
allergens = ["gluten", "dairy"]

[[venue.menu]]
id = 2
name = "Fries"
description = "Crispy golden fries"
price = 4.0
prep_minutes = 5
allergens = ["gluten"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, map[string]int{"1": 1, "2": 4, "4": 4, "8": 2}, cfg.Venue.TableSizes)
	assert.Len(t, cfg.Venue.Hours, 2)
	assert.Len(t, cfg.Venue.Menu, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_RejectsBadHoursPair(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	tests := []struct {
		name  string
		hours [][]int64
	}{
		{"not a pair", [][]int64{{36}}},
		{"open after close", [][]int64{{56, 36}}},
		{"negative open", [][]int64{{-1, 36}}},
		{"close past week end", [][]int64{{36, domain.SlotsPerWeek + 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := *cfg
			broken.Venue.Hours = tt.hours
			assert.Error(t, broken.validate())
		})
	}
}

func TestValidate_RejectsBadMenu(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	cfg.Venue.Menu[1].ID = 1 // duplicate of the first item
	assert.Error(t, cfg.validate())

	cfg.Venue.Menu[1].ID = 0
	assert.Error(t, cfg.validate())
}

func TestDatabase_DSN(t *testing.T) {
	d := Database{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}

func TestVenue_ToVenueConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	venue, err := cfg.Venue.ToVenueConfig()
	require.NoError(t, err)

	assert.Equal(t, 11, venue.Bands.TotalTables())
	assert.Equal(t, 8, venue.Bands.MaxCapacity())
	require.Len(t, venue.Hours, 2)
	assert.Equal(t, domain.HoursInterval{Open: 36, Close: 56}, venue.Hours[0])

	item, ok := venue.Menu.Item(1)
	require.True(t, ok)
	assert.Equal(t, "Classic Burger", item.Name)
	assert.Equal(t, 10, item.PrepMinutes)
}

func TestVenue_ToVenueConfig_RejectsNonIntegerCapacity(t *testing.T) {
	v := Venue{TableSizes: map[string]int{"big": 2}}
	_, err := v.ToVenueConfig()
	assert.Error(t, err)
}
