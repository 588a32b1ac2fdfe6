package host

import (
	"os"

	"github.com/tidwall/gjson"
)

// Config is the optional `.lispcorerc` JSON blob SPEC_FULL's domain
// stack wires gjson into: engine resource limits and a set of builtin
// names marked disabled (e.g. "async"). The set is parsed into
// DisabledBuiltin only; no builtin dispatch consults it.
type Config struct {
	MaxStackDepth   int
	DisabledBuiltin map[string]bool
}

// DefaultConfig mirrors the engine's own built-in default.
func DefaultConfig() Config {
	return Config{MaxStackDepth: 100_000, DisabledBuiltin: map[string]bool{}}
}

// LoadConfig reads path if it exists, overlaying its fields onto
// DefaultConfig; a missing file is not an error, since the rc file is
// optional.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	root := gjson.ParseBytes(data)
	if v := root.Get("maxStackDepth"); v.Exists() {
		cfg.MaxStackDepth = int(v.Int())
	}
	for _, name := range root.Get("disabledBuiltins").Array() {
		cfg.DisabledBuiltin[name.String()] = true
	}
	return cfg, nil
}
