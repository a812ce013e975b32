package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidInput = errors.New("invalid input")
)

// RawConf is the on-disk form of Config
type RawConf struct {
	Input     string `toml:"input" yaml:"input"`
	Singlets  string `toml:"singlets" yaml:"singlets"`
	Output    string `toml:"output" yaml:"output"`
	Format    string `toml:"format" yaml:"format"`
	Sheet     string `toml:"sheet" yaml:"sheet"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Print     bool   `toml:"print" yaml:"print"`
}

// ToConfig converts rc to a Config, parsing the singlet selection if
// one is given
func (rc RawConf) ToConfig() (conf Config, err error) {
	conf.Input = rc.Input
	conf.Output = rc.Output
	conf.Format = rc.Format
	conf.Sheet = rc.Sheet
	conf.LogLevel = rc.LogLevel
	conf.LogFormat = rc.LogFormat
	conf.Print = rc.Print
	if rc.Singlets != "" {
		conf.Singlets, err = ParseStates(rc.Singlets)
	}
	return
}

type Config struct {
	Input     string
	Singlets  map[int]struct{}
	Output    string
	Format    string
	Sheet     string
	LogLevel  string
	LogFormat string
	Print     bool
}

// DefaultRawConf returns the settings used when neither a config file
// nor a flag provides one
func DefaultRawConf() RawConf {
	return RawConf{
		Format:    FORMAT_XLSX,
		Sheet:     DEFAULT_SHEET,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads a TOML or YAML config file, chosen by its
// extension, on top of DefaultRawConf
func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %q", ErrFileNotFound, filename)
	} else if err != nil {
		return Config{}, err
	}
	rc := DefaultRawConf()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml", ".in", "":
		err = toml.Unmarshal(cont, &rc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(cont, &rc)
	default:
		return Config{}, fmt.Errorf("%w: config extension %q",
			ErrUnknownFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parsing %q: %w", filename, err)
	}
	return rc.ToConfig()
}

// ReadDocument returns the full contents of the ORCA output filename
func ReadDocument(filename string) (string, error) {
	byts, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrFileNotFound, filename)
	} else if err != nil {
		return "", err
	}
	return string(byts), nil
}
