package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Parser loads a Config from a Lua source and expands environment references
// in it.
type Parser struct {
	lua *LuaConfigParser
}

// NewParser creates a Parser with its own Lua runtime. Call Close when done.
func NewParser() (*Parser, error) {
	lua, err := NewLuaConfigParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create Lua parser: %w", err)
	}
	return &Parser{lua: lua}, nil
}

// ParseFile reads and parses the configuration file at path.
func (p *Parser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return p.Parse(content)
}

// ParseFromFS reads and parses a configuration file from fsys, for example an
// embedded filesystem.
func (p *Parser) ParseFromFS(fsys fs.FS, path string) (*Config, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS %s: %w", path, err)
	}
	return p.Parse(content)
}

// ParseReader parses a configuration read from r.
func (p *Parser) ParseReader(r io.Reader) (*Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return p.Parse(content)
}

// Parse parses Lua configuration content.
func (p *Parser) Parse(content []byte) (*Config, error) {
	cfg, err := p.lua.Parse(content)
	if err != nil {
		return nil, err
	}
	ExpandEnvConfig(cfg)
	return cfg, nil
}

// Close releases the Lua runtime.
func (p *Parser) Close() error {
	if p.lua != nil {
		return p.lua.Close()
	}
	return nil
}

// Load parses and validates the file at path. Validation warnings are
// returned alongside a valid configuration.
func Load(path string) (*Config, []ValidationError, error) {
	p, err := NewParser()
	if err != nil {
		return nil, nil, err
	}
	defer p.Close()

	cfg, err := p.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	result := Validate(cfg)
	if err := result.Error(); err != nil {
		return nil, result.Warnings, err
	}
	return cfg, result.Warnings, nil
}
