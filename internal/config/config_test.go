package config

import "testing"

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	if cfg.Version != configVersionV1 {
		t.Errorf("Version = %q; want %q", cfg.Version, configVersionV1)
	}
	if cfg.Separator != " " {
		t.Errorf("Separator = %q; want %q", cfg.Separator, " ")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v; want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:   "custom separator",
			mutate: func(c *Config) { c.Separator = "|" },
		},
		{
			name:   "debug log level",
			mutate: func(c *Config) { c.LogLevel = "debug" },
		},
		{
			name:    "empty separator",
			mutate:  func(c *Config) { c.Separator = "" },
			wantErr: true,
		},
		{
			name:    "bogus log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
	}

	for _, test := range tests {
		cfg := NewDefault()
		test.mutate(cfg)

		err := cfg.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() = %v; wantErr %v", test.name, err, test.wantErr)
		}
	}
}
