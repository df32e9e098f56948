package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/errors"
	"github.com/copperlint/copper/pkg/logging"
	"github.com/copperlint/copper/pkg/registry"
)

// EnvPrefix is the prefix for environment overrides of tool-level keys,
// e.g. COPPER_OUTPUT__COLOR=never.
const EnvPrefix = "COPPER_"

// reserved top-level keys that are tool configuration, not cop names.
var reserved = map[string]bool{
	"output": true,
	"log":    true,
}

// projectFiles are the candidate names searched in the project directory.
var projectFiles = []string{".copper.yml", "copper.yml", ".copper.toml"}

// baseDefaults is the in-memory floor every configuration starts from. The
// embedded application defaults, the project file and the environment layer
// over it in that order.
func baseDefaults() map[string]interface{} {
	return map[string]interface{}{
		"output.color":  "auto",
		"output.format": "plain",
		"log.level":     "warn",
	}
}

// Load builds the effective configuration for a project directory. Cop
// sections are resolved through the registry with the project file as
// origin; an ambiguous cop name fails the load.
func Load(dir string, reg *registry.Registry) (*Config, error) {
	return LoadFile(FindProjectFile(dir), reg)
}

// LoadFile builds the effective configuration from an explicit project file.
// An empty path loads defaults and environment only.
func LoadFile(path string, reg *registry.Registry) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(baseDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading built-in defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading application defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "loading %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project configuration")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	cfg := &Config{
		path:     path,
		settings: make(map[string]cop.Setting),
	}
	if err := k.Unmarshal("output", &cfg.Output); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "output section")
	}
	if err := k.Unmarshal("log", &cfg.Log); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "log section")
	}

	if path != "" {
		if err := loadCopSettings(cfg, path, reg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// loadCopSettings reads the per-cop sections of the project file. Only the
// file layer is consulted: environment variables cannot address cop names.
func loadCopSettings(cfg *Config, path string, reg *registry.Registry) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "loading %s", path)
	}

	raw := k.Raw()
	keys := make([]string, 0, len(raw))
	for key := range raw {
		if !reserved[key] {
			keys = append(keys, key)
		}
	}
	// Map order is random; sort so warnings and errors are deterministic.
	sort.Strings(keys)

	for _, key := range keys {
		resolved, err := reg.QualifiedCopName(key, path)
		if err != nil {
			return err
		}
		setting, err := parseSetting(raw[key], key, path)
		if err != nil {
			return err
		}
		cfg.settings[resolved] = setting
	}
	return nil
}

// parseSetting decodes one cop section into a Setting. A null section is an
// empty setting; anything other than a mapping is rejected.
func parseSetting(raw interface{}, key, path string) (cop.Setting, error) {
	var setting cop.Setting
	if raw == nil {
		return setting, nil
	}
	section, ok := raw.(map[string]interface{})
	if !ok {
		return setting, errors.Newf(errors.ErrConfigParse,
			"%s: %s must be a mapping of cop options", path, key)
	}

	if v, present := section["enabled"]; present {
		status, err := cop.ParseStatus(v)
		if err != nil {
			return setting, errors.Wrapf(err, errors.ErrConfigParse, "%s: %s", path, key)
		}
		setting.Enabled = status
	}
	if v, present := section["safe"]; present {
		safe, ok := v.(bool)
		if !ok {
			return setting, errors.Newf(errors.ErrConfigParse,
				"%s: %s safe must be a boolean", path, key)
		}
		setting.Safe = &safe
	}
	return setting, nil
}

// FindProjectFile locates the project configuration: candidates in dir
// first, then the user-level file under the XDG config home.
func FindProjectFile(dir string) string {
	for _, name := range projectFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	userPath := filepath.Join(xdg.ConfigHome, "copper", "config.yml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// parserFor picks the koanf parser from the file extension.
func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

// envKey maps COPPER_OUTPUT__COLOR to output.color.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
