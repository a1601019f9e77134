package config

import "testing"

func TestExpandEnv(t *testing.T) {
	t.Setenv("SCREEN_TEST_USER", "ada")
	t.Setenv("SCREEN_TEST_EMPTY", "")

	tests := []struct {
		name, in, want string
	}{
		{"no variables", "plain title", "plain title"},
		{"braced", "${SCREEN_TEST_USER} screen", "ada screen"},
		{"bare", "$SCREEN_TEST_USER screen", "ada screen"},
		{"unset", "[${SCREEN_TEST_UNSET}]", "[]"},
		{"default for unset", "${SCREEN_TEST_UNSET:-guest}", "guest"},
		{"default for empty", "${SCREEN_TEST_EMPTY:-guest}", "guest"},
		{"default ignored when set", "${SCREEN_TEST_USER:-guest}", "ada"},
		{"several", "$SCREEN_TEST_USER/${SCREEN_TEST_USER}", "ada/ada"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.in); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandEnvConfig(t *testing.T) {
	t.Setenv("SCREEN_TEST_USER", "ada")
	cfg := DefaultConfig()
	cfg.Title = "${SCREEN_TEST_USER}'s screen"
	cfg.LogLevel = "$SCREEN_TEST_USER"
	ExpandEnvConfig(&cfg)

	if cfg.Title != "ada's screen" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.LogLevel != "$SCREEN_TEST_USER" {
		t.Errorf("LogLevel expanded to %q", cfg.LogLevel)
	}
	ExpandEnvConfig(nil)
}
