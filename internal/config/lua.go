// Package config provides configuration parsing for go-horseshoe.
// This file implements the Lua configuration parser.

package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// Resource limits for executing a configuration chunk.
const (
	luaCPULimit    = 10_000_000
	luaMemoryLimit = 50 * 1024 * 1024 // 50 MB
)

// LuaConfigParser parses Lua configuration files. The chunk runs with the
// standard library loaded and must assign its settings to slider.config:
//
//	slider.config = {
//	    min = 0,
//	    max = 100,
//	    arc_color = "#d0d0d0",
//	}
type LuaConfigParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaConfigParser creates a new LuaConfigParser with a fresh Lua runtime.
func NewLuaConfigParser() (*LuaConfigParser, error) {
	return NewLuaConfigParserWithOutput(io.Discard)
}

// NewLuaConfigParserWithOutput creates a LuaConfigParser whose print output
// goes to stdout.
func NewLuaConfigParserWithOutput(stdout io.Writer) (*LuaConfigParser, error) {
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	return &LuaConfigParser{
		runtime: runtime,
		cleanup: cleanup,
	}, nil
}

// Parse executes a Lua configuration chunk and extracts slider.config.
func (p *LuaConfigParser) Parse(content []byte) (*Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup == nil {
		return nil, fmt.Errorf("lua parser is closed")
	}

	p.initSliderGlobal()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"config",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua configuration: %w", err)
	}

	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    luaCPULimit,
			Memory: luaMemoryLimit,
		},
	}
	p.runtime.PushContext(ctx)
	defer p.runtime.PopContext()

	thread := p.runtime.MainThread()
	if _, err := rt.Call1(thread, rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("failed to execute Lua configuration: %w", err)
	}

	return p.extractConfig()
}

// initSliderGlobal installs an empty slider.config table.
func (p *LuaConfigParser) initSliderGlobal() {
	sliderTable := rt.NewTable()
	sliderTable.Set(rt.StringValue("config"), rt.TableValue(rt.NewTable()))
	p.runtime.GlobalEnv().Set(rt.StringValue("slider"), rt.TableValue(sliderTable))
}

// extractConfig reads slider.config on top of the defaults.
func (p *LuaConfigParser) extractConfig() (*Config, error) {
	cfg := DefaultConfig()

	sliderVal := p.runtime.GlobalEnv().Get(rt.StringValue("slider"))
	if sliderVal == rt.NilValue {
		return &cfg, nil
	}
	sliderTable, ok := sliderVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("slider is not a table")
	}

	configVal := sliderTable.Get(rt.StringValue("config"))
	if configVal == rt.NilValue {
		return &cfg, nil
	}
	configTable, ok := configVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("slider.config is not a table")
	}

	// Aliases first so the canonical spelling wins when both are present.
	for alias := range keyAliases {
		if err := p.extractKey(&cfg, configTable, alias); err != nil {
			return nil, err
		}
	}
	for _, key := range Keys {
		if err := p.extractKey(&cfg, configTable, key); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (p *LuaConfigParser) extractKey(cfg *Config, table *rt.Table, key string) error {
	s, ok := getTableText(table, key)
	if !ok {
		return nil
	}
	_, err := applyKey(cfg, key, s)
	return err
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaConfigParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

// getTableText retrieves a scalar from a Lua table in textual form.
// Returns false if the key doesn't exist or holds a table or function.
func getTableText(table *rt.Table, key string) (string, bool) {
	val := table.Get(rt.StringValue(key))
	if val == rt.NilValue {
		return "", false
	}
	if s, ok := val.TryString(); ok {
		return s, true
	}
	if n, ok := val.TryInt(); ok {
		return strconv.FormatInt(n, 10), true
	}
	if f, ok := val.TryFloat(); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	if b, ok := val.TryBool(); ok {
		return strconv.FormatBool(b), true
	}
	return "", false
}
