package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "va_booking"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
service_name = "va-booking-service"
path = "/metrics"

[[pricing_rules]]
id = "weekend-surge"
condition = "weekend"
multiplier = 1.1

[[slot_plans]]
service_id = "lavage"
date = "2026-09-05"
times = ["09:00", "09:30"]
base_price = 5000
duration_minutes = 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=va_booking sslmode=disable",
		cfg.Database.DSN())
	assert.True(t, cfg.Metrics.Enabled)

	require.Len(t, cfg.PricingRules, 1)
	assert.Equal(t, "weekend-surge", cfg.PricingRules[0].ID)
	assert.Equal(t, "", cfg.PricingRules[0].ServiceID)

	require.Len(t, cfg.SlotPlans, 1)
	assert.Equal(t, []string{"09:00", "09:30"}, cfg.SlotPlans[0].Times)
	assert.Equal(t, int64(5000), cfg.SlotPlans[0].BasePrice)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "postgres", cfg.Database.User)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		replace string
	}{
		{"bad port", "http_port = 8083", "http_port = 0"},
		{"bad multiplier", "multiplier = 1.1", "multiplier = -1.0"},
		{"missing log file", `file = "logs/app.log"`, `file = ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := strings.Replace(sampleConfig, tt.mutate, tt.replace, 1)

			_, err := Load(writeConfig(t, broken))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
