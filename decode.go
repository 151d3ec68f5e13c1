// File: gsettings-gen/decode.go
package gsettings

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the current values of all registered keys into the target
// struct pointer. Field mapping uses the "toml" tag, so kebab-case key
// names can be bound explicitly:
//
//	type WindowState struct {
//	    Width     int32 `toml:"window-width"`
//	    Maximized bool  `toml:"is-maximized"`
//	}
//
// Decoding is weakly typed: numeric widths and stringified values convert
// where possible.
func (s *Store) Scan(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(s.snapshot()); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}

	return nil
}
