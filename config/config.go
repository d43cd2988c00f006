// Package config loads catalog overlays: fault kinds declared in a file
// rather than compiled into the vimfault catalog.
//
// An overlay lets a client bind faults introduced by a newer vSphere release
// without a new build:
//
//	kinds:
//	  - name: VsanFault
//	    base: VimFault
//	    code: INTERNAL_ERROR
//	    fields:
//	      - name: uuid
//	        type: string
//	        optional: true
//
// Settings can also come from the environment with the VIMFAULT_ prefix,
// e.g. VIMFAULT_LOG_LEVEL=debug.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jmgilman/vimfault"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "VIMFAULT"

// DefaultBase is the base kind of overlay entries that name none.
const DefaultBase = "VimFault"

// ErrInvalidConfig is wrapped by errors reading or applying an overlay.
var ErrInvalidConfig = errors.New("invalid vimfault configuration")

// Config is a catalog overlay plus logging settings.
type Config struct {
	Log   LogConfig    `mapstructure:"log"`
	Kinds []KindConfig `mapstructure:"kinds"`
}

// LogConfig selects the logrus level and format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// KindConfig declares one fault kind.
type KindConfig struct {
	Name           string        `mapstructure:"name"`
	WireName       string        `mapstructure:"wireName"`
	Base           string        `mapstructure:"base"`
	Code           string        `mapstructure:"code"`
	Classification string        `mapstructure:"classification"`
	Fields         []FieldConfig `mapstructure:"fields"`
}

// FieldConfig declares one detail field. Type is a vimfault.FieldType short
// name: string, int, bool, moref or strings.
type FieldConfig struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Optional bool   `mapstructure:"optional"`
}

// Load reads the configuration file at path. The format follows the file
// extension (yaml, json, toml). An empty path reads only defaults and the
// environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Apply builds the overlay kinds and returns base extended with them.
// Bases are resolved against earlier entries of the overlay first, then
// against base. A nil base uses vimfault.Default().
func (c *Config) Apply(base *vimfault.Registry) (*vimfault.Registry, error) {
	if base == nil {
		base = vimfault.Default()
	}
	if len(c.Kinds) == 0 {
		return base, nil
	}

	declared := make(map[string]*vimfault.Kind, len(c.Kinds))
	kinds := make([]*vimfault.Kind, 0, len(c.Kinds))
	for _, kc := range c.Kinds {
		k, err := kc.build(base, declared)
		if err != nil {
			return nil, err
		}
		declared[kc.Name] = k
		kinds = append(kinds, k)
	}

	r, err := base.Extend(kinds...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return r, nil
}

func (kc KindConfig) build(r *vimfault.Registry, declared map[string]*vimfault.Kind) (*vimfault.Kind, error) {
	if kc.Name == "" {
		return nil, fmt.Errorf("%w: kind without a name", ErrInvalidConfig)
	}

	baseName := kc.Base
	if baseName == "" {
		baseName = DefaultBase
	}
	base, ok := declared[baseName]
	if !ok {
		var err error
		base, err = r.LookupType(baseName)
		if err != nil {
			return nil, fmt.Errorf("%w: kind %s: base: %w", ErrInvalidConfig, kc.Name, err)
		}
	}

	var opts []vimfault.KindOption
	if kc.WireName != "" {
		opts = append(opts, vimfault.WithWireName(kc.WireName))
	}
	if kc.Code != "" {
		code := vimfault.Code(strings.ToUpper(kc.Code))
		if !code.Valid() {
			return nil, fmt.Errorf("%w: kind %s: unknown code %q", ErrInvalidConfig, kc.Name, kc.Code)
		}
		opts = append(opts, vimfault.WithCode(code))
	}
	if kc.Classification != "" {
		c := vimfault.Classification(strings.ToUpper(kc.Classification))
		if c != vimfault.ClassificationRetryable && c != vimfault.ClassificationPermanent {
			return nil, fmt.Errorf("%w: kind %s: unknown classification %q", ErrInvalidConfig, kc.Name, kc.Classification)
		}
		opts = append(opts, vimfault.WithDefaultClassification(c))
	}

	fields := make([]vimfault.FieldSpec, 0, len(kc.Fields))
	for _, fc := range kc.Fields {
		typ, err := vimfault.ParseFieldType(fc.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: kind %s: field %s: %w", ErrInvalidConfig, kc.Name, fc.Name, err)
		}
		fields = append(fields, vimfault.FieldSpec{Name: fc.Name, Type: typ, Optional: fc.Optional})
	}
	if len(fields) > 0 {
		opts = append(opts, vimfault.WithFields(fields...))
	}

	return vimfault.NewKind(kc.Name, base, opts...), nil
}
