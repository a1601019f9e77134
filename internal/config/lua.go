package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/opd-ai/go-screen/internal/display"
)

// Resource limits for evaluating a configuration chunk.
const (
	luaCPULimit    = 10_000_000
	luaMemoryLimit = 50 * 1024 * 1024
)

// LuaConfigParser evaluates Lua configuration files and reads the
// screen.config table they leave behind.
type LuaConfigParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaConfigParser creates a parser whose Lua print output is discarded.
func NewLuaConfigParser() (*LuaConfigParser, error) {
	return NewLuaConfigParserWithOutput(io.Discard)
}

// NewLuaConfigParserWithOutput creates a parser writing Lua print output to
// stdout, or os.Stdout if nil.
func NewLuaConfigParserWithOutput(stdout io.Writer) (*LuaConfigParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	r := rt.New(stdout)
	return &LuaConfigParser{runtime: r, cleanup: lib.LoadAll(r)}, nil
}

// Parse evaluates content and returns the configuration it defines. Settings
// the chunk does not mention keep their defaults.
func (p *LuaConfigParser) Parse(content []byte) (*Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup == nil {
		return nil, fmt.Errorf("lua parser closed")
	}
	p.resetGlobal()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"config",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua configuration: %w", err)
	}

	p.runtime.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    luaCPULimit,
			Memory: luaMemoryLimit,
		},
	})
	defer p.runtime.PopContext()

	if err := p.call(closure); err != nil {
		return nil, fmt.Errorf("failed to execute Lua configuration: %w", err)
	}
	return p.extract()
}

// call runs the chunk. golua panics when a hard limit is exceeded; the panic
// is returned as an error.
func (p *LuaConfigParser) call(closure *rt.Closure) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resource limit exceeded: %v", r)
		}
	}()
	_, err = rt.Call1(p.runtime.MainThread(), rt.FunctionValue(closure))
	return err
}

// resetGlobal installs a fresh screen table so a parse never sees values left
// by the previous one.
func (p *LuaConfigParser) resetGlobal() {
	screenTable := rt.NewTable()
	screenTable.Set(rt.StringValue("config"), rt.TableValue(rt.NewTable()))
	p.runtime.GlobalEnv().Set(rt.StringValue("screen"), rt.TableValue(screenTable))
}

func (p *LuaConfigParser) extract() (*Config, error) {
	cfg := DefaultConfig()

	screenVal := p.runtime.GlobalEnv().Get(rt.StringValue("screen"))
	if screenVal == rt.NilValue {
		return &cfg, nil
	}
	screenTable, ok := screenVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("screen is not a table")
	}

	configVal := screenTable.Get(rt.StringValue("config"))
	if configVal == rt.NilValue {
		return &cfg, nil
	}
	table, ok := configVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("screen.config is not a table")
	}
	if err := extractConfigTable(&cfg, table); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func extractConfigTable(cfg *Config, table *rt.Table) error {
	if val := getTableString(table, "display_mode"); val != nil {
		mode, err := display.ParseDisplayMode(*val)
		if err != nil {
			return fmt.Errorf("invalid display_mode: %w", err)
		}
		cfg.DisplayMode = mode
	}

	if val := table.Get(rt.StringValue("viewport")); val != rt.NilValue {
		d, err := dimensionValue(val)
		if err != nil {
			return fmt.Errorf("invalid viewport: %w", err)
		}
		cfg.Viewport = d
	}

	if val := table.Get(rt.StringValue("resolution")); val != rt.NilValue {
		if name, ok := val.TryString(); ok {
			d, found := display.Preset(name)
			if !found {
				return fmt.Errorf("invalid resolution: unknown preset %q (known: %s)",
					name, strings.Join(display.PresetNames(), ", "))
			}
			cfg.Resolution = d
			cfg.ResolutionPreset = name
		} else {
			d, err := dimensionValue(val)
			if err != nil {
				return fmt.Errorf("invalid resolution: %w", err)
			}
			cfg.Resolution = d
		}
	}

	if val := getTableBool(table, "antialiasing"); val != nil {
		cfg.Antialiasing = *val
	}
	if val := getTableFloat(table, "pixel_ratio"); val != nil {
		cfg.PixelRatio = *val
	}
	if val := getTableString(table, "title"); val != nil {
		cfg.Title = *val
	}
	if val := getTableBool(table, "overlay"); val != nil {
		cfg.Overlay = *val
	}
	if val := getTableInt(table, "max_surface_size"); val != nil {
		cfg.MaxSurfaceSize = *val
	}
	if val := getTableString(table, "log_level"); val != nil {
		cfg.LogLevel = *val
	}
	if val := getTableString(table, "log_format"); val != nil {
		cfg.LogFormat = *val
	}
	return nil
}

// dimensionValue reads { width = w, height = h } or the positional form
// { w, h }.
func dimensionValue(val rt.Value) (display.Dimension, error) {
	t, ok := val.TryTable()
	if !ok {
		return display.Dimension{}, fmt.Errorf("expected { width = ..., height = ... }")
	}
	w := getTableFloat(t, "width")
	h := getTableFloat(t, "height")
	if w == nil && h == nil {
		w = getIndexFloat(t, 1)
		h = getIndexFloat(t, 2)
	}
	if w == nil || h == nil {
		return display.Dimension{}, fmt.Errorf("width and height are required")
	}
	return display.Dim(*w, *h), nil
}

// Close releases the Lua runtime. Parse fails after Close.
func (p *LuaConfigParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// getTableBool returns a boolean field, accepting "yes"/"no" style strings.
// It returns nil if the key is absent or of another type.
func getTableBool(table *rt.Table, key string) *bool {
	val := table.Get(rt.StringValue(key))
	if b, ok := val.TryBool(); ok {
		return &b
	}
	if s, ok := val.TryString(); ok {
		b := parseBool(s)
		return &b
	}
	return nil
}

func getTableString(table *rt.Table, key string) *string {
	if s, ok := table.Get(rt.StringValue(key)).TryString(); ok {
		return &s
	}
	return nil
}

func getTableFloat(table *rt.Table, key string) *float64 {
	return numberValue(table.Get(rt.StringValue(key)))
}

func getIndexFloat(table *rt.Table, i int64) *float64 {
	return numberValue(table.Get(rt.IntValue(i)))
}

func numberValue(val rt.Value) *float64 {
	if val == rt.NilValue {
		return nil
	}
	if n, ok := val.TryInt(); ok {
		f := float64(n)
		return &f
	}
	if f, ok := val.TryFloat(); ok {
		return &f
	}
	return nil
}

// getTableInt truncates floats.
func getTableInt(table *rt.Table, key string) *int {
	f := getTableFloat(table, key)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true
	}
	b, _ := strconv.ParseBool(strings.TrimSpace(s))
	return b
}
