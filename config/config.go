// Package config loads the database connection settings: the three keys
// url, user and password, read from a named resource file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// DefaultName is the resource loaded when no name is given.
const DefaultName = "config/config"

// extensions are tried in order when the resource name has none.
var extensions = []string{".properties", ".ini", ".yaml", ".yml", ".toml"}

var (
	// ErrNotFound is returned when no file exists for the resource name.
	ErrNotFound = errors.New("config: resource not found")

	// ErrMissingKey is returned when one of url, user or password is absent.
	ErrMissingKey = errors.New("config: missing key")
)

// Config holds the connection settings.
type Config struct {
	URL      string `ini:"url" yaml:"url" toml:"url" validate:"required"`
	User     string `ini:"user" yaml:"user" toml:"user" validate:"required"`
	Password string `ini:"password" yaml:"password" toml:"password"`
}

var keys = []string{"url", "user", "password"}

// Load reads the resource called name. An empty name means DefaultName.
// A name with an extension is read as-is; otherwise name.properties,
// name.ini, name.yaml, name.yml and name.toml are tried in that order.
func Load(name string) (Config, error) {
	if name == "" {
		name = DefaultName
	}
	path, err := resolve(name)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	case ".toml":
		cfg, err = loadTOML(path)
	default:
		cfg, err = loadProperties(path)
	}
	if err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

func resolve(name string) (string, error) {
	if filepath.Ext(name) != "" {
		if _, err := os.Stat(name); err != nil {
			return "", errors.Wrapf(ErrNotFound, "%s", name)
		}
		return name, nil
	}
	for _, ext := range extensions {
		if _, err := os.Stat(name + ext); err == nil {
			return name + ext, nil
		}
	}
	return "", errors.Wrapf(ErrNotFound, "%s{%s}", name, strings.Join(extensions, ","))
}

func loadProperties(path string) (Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: false,
		SpaceBeforeInlineComment:   true,
	}, path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	section := f.Section("")
	for _, k := range keys {
		if !section.HasKey(k) {
			return Config{}, errors.Wrapf(ErrMissingKey, "%s in %s", k, path)
		}
	}

	var cfg Config
	if err := section.MapTo(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: map %s", path)
	}
	return cfg, nil
}

func loadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	for _, k := range keys {
		if _, ok := raw[k]; !ok {
			return Config{}, errors.Wrapf(ErrMissingKey, "%s in %s", k, path)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: decode %s", path)
	}
	return cfg, nil
}

func loadTOML(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	for _, k := range keys {
		if !md.IsDefined(k) {
			return Config{}, errors.Wrapf(ErrMissingKey, "%s in %s", k, path)
		}
	}
	return cfg, nil
}
