// Package config provides configuration parsing for go-horseshoe.
// This file implements the unified parser that auto-detects the configuration format.

package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Parser provides a unified interface for parsing slider configuration
// files in Lua, YAML or legacy format.
type Parser struct {
	legacyParser *LegacyParser
	luaParser    *LuaConfigParser
	yamlParser   *YAMLParser
}

// NewParser creates a new Parser that can handle every supported format.
func NewParser() (*Parser, error) {
	luaParser, err := NewLuaConfigParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create Lua parser: %w", err)
	}

	return &Parser{
		legacyParser: NewLegacyParser(),
		luaParser:    luaParser,
		yamlParser:   NewYAMLParser(),
	}, nil
}

// ParseFile reads and parses a configuration file. The extension selects
// the format when it is .lua, .yaml or .yml; otherwise the content decides.
func (p *Parser) ParseFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return p.parseFormat(content, DetectFormat(path, content))
}

// Parse parses configuration content, auto-detecting the format.
func (p *Parser) Parse(content []byte) (*Config, error) {
	return p.parseFormat(content, DetectFormat("", content))
}

// luaConfigPattern matches "slider.config =" at the start of a line, which
// marks the Lua format.
var luaConfigPattern = regexp.MustCompile(`(?m)^\s*slider\.config\s*=`)

// yamlSectionPattern matches a top-level YAML section header.
var yamlSectionPattern = regexp.MustCompile(`(?m)^(slider|style|window|logging):\s*(#.*)?$`)

// DetectFormat picks the format of a configuration from its file name and
// content. An empty path relies on the content alone.
func DetectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		return FormatLua
	case ".yaml", ".yml":
		return FormatYAML
	}
	switch {
	case luaConfigPattern.Match(content):
		return FormatLua
	case yamlSectionPattern.Match(content):
		return FormatYAML
	default:
		return FormatLegacy
	}
}

// ParseFromFS reads and parses a configuration file from an embedded filesystem.
func (p *Parser) ParseFromFS(fsys fs.FS, path string) (*Config, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS %s: %w", path, err)
	}

	return p.parseFormat(content, DetectFormat(path, content))
}

// ParseReader parses configuration from an io.Reader.
// The format parameter must be "legacy", "lua" or "yaml".
func (p *Parser) ParseReader(r io.Reader, format string) (*Config, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return p.parseFormat(content, f)
}

func (p *Parser) parseFormat(content []byte, format Format) (*Config, error) {
	cfg, err := p.decode(content, format)
	if err != nil {
		return nil, err
	}
	ExpandEnvConfig(cfg)
	return cfg, nil
}

// decode parses content without expanding environment references.
func (p *Parser) decode(content []byte, format Format) (*Config, error) {
	switch format {
	case FormatLua:
		return p.luaParser.Parse(content)
	case FormatYAML:
		return p.yamlParser.Parse(content)
	default:
		return p.legacyParser.Parse(content)
	}
}

// Close releases resources associated with the parser.
func (p *Parser) Close() error {
	if p.luaParser != nil {
		return p.luaParser.Close()
	}
	return nil
}
