package config

import (
	"os"
	"strings"
)

// ExpandEnv replaces $VAR, ${VAR} and ${VAR:-default} references in s.
// Unset variables without a default expand to the empty string.
func ExpandEnv(s string) string {
	return os.Expand(s, lookupWithDefault)
}

func lookupWithDefault(name string) string {
	key, def, hasDefault := strings.Cut(name, ":-")
	if val := os.Getenv(key); val != "" || !hasDefault {
		return val
	}
	return def
}

// ExpandEnvConfig expands environment references in the string settings of
// cfg that are shown to users. Mode and log names are left alone so a typo
// fails validation instead of silently expanding to nothing.
func ExpandEnvConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Title = ExpandEnv(cfg.Title)
}
