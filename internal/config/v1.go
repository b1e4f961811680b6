package config

import "fmt"

const configVersionV1 = "1"

type configV1 struct {
	Version   string `json:"version"`             // required by vconfig-go
	Separator string `json:"separator,omitempty"` // joins the output fields
	LogLevel  string `json:"log_level,omitempty"` // off, error or debug
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version:   configVersionV1,
		Separator: " ",
	}
}

func (c *configV1) validateV1() error {
	if c.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}

	switch c.LogLevel {
	case "", "off", "error", "debug":
	default:
		return fmt.Errorf("unknown log level: '%s'", c.LogLevel)
	}

	return nil
}
