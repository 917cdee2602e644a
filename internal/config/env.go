package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet reports whether a flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny reports whether any of the aliases of a flag was given.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride binds one environment variable (without EnvPrefix) to the
// flags it stands in for.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

func intOverride(target func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			*target(c) = parsed
		}
	}
}

func boolOverride(target func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := target(c)
		*p = parseBoolEnv(v, *p)
	}
}

// envOverrides lists every supported HUMANIZE_* variable.
var envOverrides = []envOverride{
	{"NDIGITS", []string{"ndigits"}, intOverride(func(c *AppConfig) *int { return &c.NDigits })},
	{"WORKERS", []string{"workers"}, intOverride(func(c *AppConfig) *int { return &c.Workers })},
	{"MIN_BATCH", []string{"min-batch"}, intOverride(func(c *AppConfig) *int { return &c.MinBatch })},

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"FORMAT", []string{"format", "f"}, func(c *AppConfig, v string) { c.Format = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) { c.LogLevel = v }},
	{"ADDR", []string{"addr"}, func(c *AppConfig, v string) { c.Addr = v }},

	{"BINARY", []string{"binary", "b"}, boolOverride(func(c *AppConfig) *bool { return &c.Binary })},
	{"GNU", []string{"gnu", "g"}, boolOverride(func(c *AppConfig) *bool { return &c.GNU })},
	{"JSON", []string{"json"}, boolOverride(func(c *AppConfig) *bool { return &c.JSON })},
	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"NO_COLOR", []string{"no-color"}, boolOverride(func(c *AppConfig) *bool { return &c.NoColor })},
}

// parseBoolEnv accepts true/1/yes and false/0/no, case-insensitively, and
// keeps defaultVal for anything else.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides fills flags left unset on the command line from the
// environment, giving the priority: flags > environment > defaults.
//
// Variables (prefixed with HUMANIZE_): NDIGITS, WORKERS, MIN_BATCH, TIMEOUT,
// FORMAT, OUTPUT, LOG_LEVEL, ADDR, BINARY, GNU, JSON, QUIET, NO_COLOR.
// NO_COLOR without the prefix is honoured as well.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
	if !isFlagSet(fs, "no-color") {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			config.NoColor = true
		}
	}
}
