// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

package config

import (
	"os"
	"sync/atomic"
	"time"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Error codes for configuration failures.
const (
	CodeLoadFailed = "CONFIG_LOAD_FAILED"
	CodeInvalid    = "CONFIG_INVALID"
)

// flagKeys maps CLI flag names to the config keys they override.
var flagKeys = map[string]string{
	"default-locale": "date.default-locale",
	"date-pattern":   "date.pattern",
}

// Store holds the active configuration snapshot. Reads are lock-free;
// Reload swaps the snapshot atomically, keeping the previous one on
// failure.
type Store struct {
	path    string
	flags   *pflag.FlagSet
	current atomic.Pointer[Config]
}

// Open loads the configuration from path and returns a Store. An
// empty path or a missing file yields the built-in defaults. Flags,
// when non-nil, override individual keys (see flagKeys).
func Open(path string, flags *pflag.FlagSet) (*Store, error) {
	s := &Store{path: path, flags: flags}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the active configuration. The returned value is
// immutable; callers must not retain it across requests.
func (s *Store) Snapshot() *Config {
	return s.current.Load()
}

// Reload re-reads the configuration file and swaps the snapshot,
// returning the elapsed load time. On error the previous snapshot
// stays active.
func (s *Store) Reload() (time.Duration, error) {
	start := time.Now()

	cfg, err := load(s.path, s.flags)
	if err != nil {
		return 0, err
	}

	s.current.Store(cfg)
	return time.Since(start), nil
}

// load builds a Config from defaults, the YAML file, and flag
// overrides, in that precedence order.
func load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing file is fine: defaults apply.
		case err != nil:
			return nil, oops.Code(CodeLoadFailed).With("path", path).Wrap(err)
		default:
			if err := ValidateSchema(raw); err != nil {
				return nil, oops.Code(CodeInvalid).With("path", path).Wrap(err)
			}
			if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
				return nil, oops.Code(CodeLoadFailed).With("path", path).Wrap(err)
			}
		}
	}

	if flags != nil {
		p := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !flags.Changed(f.Name) {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(p, nil); err != nil {
			return nil, oops.Code(CodeLoadFailed).Wrap(err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code(CodeInvalid).With("path", path).Wrap(err)
	}
	return &cfg, nil
}

// WriteDefault writes the built-in configuration to path so admins
// have a complete file to edit. Existing files are left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := Default()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return oops.Code(CodeLoadFailed).Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oops.Code(CodeLoadFailed).With("path", path).Wrap(err)
	}
	return nil
}
