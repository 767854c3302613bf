package impl

import (
	"io"
	"log/slog"

	"depot/config"
)

// testLogger returns a logger that discards everything. Service logging is
// not under test here.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testConfig returns a config with the default search bounds applied.
func testConfig() *config.Config {
	return &config.Config{
		Pickup: &config.PickupConfig{
			SearchRadiusMeters: 50000,
			AssignRadiusMeters: 20000,
		},
	}
}
