package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pickup": map[string]any{
			"searchRadiusMeters": 50000,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PICKUP_SEARCHRADIUSMETERS", want: "pickup.searchRadiusMeters"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Auth.LoginCodeLength != 6 {
		t.Fatalf("LoginCodeLength = %d, want 6", cfg.Auth.LoginCodeLength)
	}
	if cfg.Auth.LoginCodeExpiry.Minutes() != 30 {
		t.Fatalf("LoginCodeExpiry = %v, want 30m", cfg.Auth.LoginCodeExpiry)
	}
	if cfg.Pickup.SearchRadiusMeters != 50000 {
		t.Fatalf("SearchRadiusMeters = %v, want 50000", cfg.Pickup.SearchRadiusMeters)
	}
	if cfg.Pickup.AssignRadiusMeters != 20000 {
		t.Fatalf("AssignRadiusMeters = %v, want 20000", cfg.Pickup.AssignRadiusMeters)
	}
}
