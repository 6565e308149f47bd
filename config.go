package debounce

import (
	"encoding/json"
	"fmt"
	"time"

	"braces.dev/errtrace"
)

// Config is a serializable description of a deferred behavior.
// In JSON the delay is a duration string like "50ms" or a number of nanoseconds.
type Config struct {
	Delay           time.Duration
	Label           string
	CapturedContext bool
	Paused          bool
}

// Validate checks the config.
func (c Config) Validate() error {
	if c.Delay <= 0 {
		return errtrace.Wrap(NewInvalidArgumentError("delay %v is not positive", c.Delay))
	}
	return nil
}

// Factory creates a factory with the configured delay.
func (c Config) Factory() (*Factory, error) {
	if err := c.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(Deferred(c.Delay))
}

// InvokeOptions returns invoke options with the configured label and flags.
// Other fields can be set on the returned value.
func (c Config) InvokeOptions() *InvokeOptions {
	return &InvokeOptions{
		Label:           c.Label,
		CapturedContext: c.CapturedContext,
		Paused:          c.Paused,
	}
}

type configData struct {
	Delay           json.RawMessage `json:"delay"`
	Label           string          `json:"label,omitempty"`
	CapturedContext bool            `json:"captured_context,omitempty"`
	Paused          bool            `json:"paused,omitempty"`
}

func (c Config) MarshalJSON() ([]byte, error) {
	delay, err := json.Marshal(c.Delay.String())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(json.Marshal(configData{
		Delay:           delay,
		Label:           c.Label,
		CapturedContext: c.CapturedContext,
		Paused:          c.Paused,
	}))
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var d configData
	if err := json.Unmarshal(data, &d); err != nil {
		return errtrace.Wrap(err)
	}
	delay, err := parseDelay(d.Delay)
	if err != nil {
		return errtrace.Wrap(err)
	}
	c.Delay = delay
	c.Label = d.Label
	c.CapturedContext = d.CapturedContext
	c.Paused = d.Paused
	return nil
}

func parseDelay(raw json.RawMessage) (time.Duration, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, errtrace.Wrap(err)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, errtrace.Wrap(NewInvalidArgumentError(fmt.Errorf("parse delay: %w", err)))
		}
		return d, nil
	}
	var ns int64
	if err := json.Unmarshal(raw, &ns); err != nil {
		return 0, errtrace.Wrap(NewInvalidArgumentError(fmt.Errorf("parse delay: %w", err)))
	}
	return time.Duration(ns), nil
}
