package config

import (
	"os"
	"regexp"
	"strings"
)

// envRef matches ${NAME}, ${NAME:-fallback} and $NAME.
var envRef = regexp.MustCompile(`\$\{([^}]+)\}|\$([a-zA-Z_][a-zA-Z0-9_]*)`)

// ExpandEnv substitutes environment references in s. A fallback is used when
// the variable is unset or empty; other unset references become "".
func ExpandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		if strings.HasPrefix(match, "${") {
			inner := match[2 : len(match)-1]
			if name, def, ok := strings.Cut(inner, ":-"); ok {
				if val := os.Getenv(name); val != "" {
					return val
				}
				return def
			}
			return os.Getenv(inner)
		}
		return os.Getenv(match[1:])
	})
}

// ExpandEnvConfig expands environment variables in the string values that
// name external things: the thumb image path and the window title.
func ExpandEnvConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Slider.ThumbImage = ExpandEnv(cfg.Slider.ThumbImage)
	cfg.Window.Title = ExpandEnv(cfg.Window.Title)
}
