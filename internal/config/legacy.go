// Package config provides configuration parsing for go-horseshoe.
// This file implements the legacy line-oriented parser.

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// LegacyParser parses "key value" configuration files. Blank lines and lines
// starting with # are skipped; unknown keys are ignored.
type LegacyParser struct{}

// NewLegacyParser creates a new LegacyParser instance.
func NewLegacyParser() *LegacyParser {
	return &LegacyParser{}
}

// Parse parses a legacy configuration from content bytes.
// It returns a Config with parsed values or an error if parsing fails.
func (p *LegacyParser) Parse(content []byte) (*Config, error) {
	cfg := DefaultConfig()
	scanner := bufio.NewScanner(bytes.NewReader(content))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := p.parseDirective(&cfg, trimmed); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading configuration: %w", err)
	}
	return &cfg, nil
}

// parseDirective parses a single configuration directive line.
// Format: "key value", or "key" alone for a boolean flag.
func (p *LegacyParser) parseDirective(cfg *Config, line string) error {
	key, value, found := strings.Cut(line, " ")
	if !found {
		key, value, found = strings.Cut(line, "\t")
	}
	if !found {
		value = "yes"
	}
	_, err := applyKey(cfg, key, value)
	return err
}
