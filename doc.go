// Package gsettings provides the runtime settings store that code generated
// by gsettings-gen talks to. The store keeps one default and one current
// value per key of a single schema, serves reads with the default when no
// value has been written, and rejects writes to non-writable keys.
//
// The store is not meant to be used through string keys directly; the point
// of the project is to generate a typed wrapper from a GSettings-style XML
// schema so that key names and value types are checked at compile time:
//
//	//go:generate gsettings-gen -file app.gschema.xml -id io.example.App -o settings_gen.go
//
//	settings := NewSettings()
//	settings.SetWindowWidth(800)
//	w := settings.WindowWidth()
//
// Features:
//   - Thread-safe operations using sync.RWMutex
//   - Per-key defaults with Reset support
//   - Writability control surfaced as ErrNotWritable
//   - Change subscriptions fired on successful writes
//   - TOML persistence with atomic file replacement
//   - Struct decoding of the current values via Scan
//
// Thread Safety:
// All operations are thread-safe. The package uses read-write mutexes to
// allow concurrent reads while protecting writes.
package gsettings
