package debounce_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/debounce"
)

func TestConfig_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		data    string
		want    debounce.Config
		wantErr error
	}{
		{
			"duration string",
			`{"delay":"50ms","label":"search","captured_context":true}`,
			debounce.Config{Delay: 50 * time.Millisecond, Label: "search", CapturedContext: true},
			nil,
		},
		{
			"nanoseconds",
			`{"delay":1000000,"paused":true}`,
			debounce.Config{Delay: time.Millisecond, Paused: true},
			nil,
		},
		{"no delay", `{"label":"x"}`, debounce.Config{Label: "x"}, nil},
		{"bad delay", `{"delay":"soon"}`, debounce.Config{}, debounce.ErrInvalidArgument},
		{"bad delay type", `{"delay":true}`, debounce.Config{}, debounce.ErrInvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var got debounce.Config
			err := json.Unmarshal([]byte(c.data), &got)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("json.Unmarshal() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("json.Unmarshal() = %+v, want %+v\ndiff (-got +want):\n%v", got, c.want, diff)
			}
		})
	}
}

func TestConfig_MarshalJSON(t *testing.T) {
	t.Parallel()

	cfg := debounce.Config{Delay: 300 * time.Millisecond, Label: "search", Paused: true}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v, want nil", err)
	}
	want := `{"delay":"300ms","label":"search","paused":true}`
	if got := string(data); got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestConfig_Factory(t *testing.T) {
	t.Parallel()

	_, err := debounce.Config{}.Factory()
	if diff := cmp.Diff(err, debounce.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("Config{}.Factory() error = %v, want %v\ndiff (-got +want):\n%v", err, debounce.ErrInvalidArgument, diff)
	}

	cfg := debounce.Config{Delay: time.Second, Label: "save", CapturedContext: true}
	f, err := cfg.Factory()
	if err != nil {
		t.Fatalf("cfg.Factory() error = %v, want nil", err)
	}
	if got := f.Delay(); got != time.Second {
		t.Errorf("f.Delay() = %v, want %v", got, time.Second)
	}

	want := &debounce.InvokeOptions{Label: "save", CapturedContext: true}
	if diff := cmp.Diff(cfg.InvokeOptions(), want); diff != "" {
		t.Errorf("cfg.InvokeOptions() = %+v, want %+v\ndiff (-got +want):\n%v", cfg.InvokeOptions(), want, diff)
	}
}
