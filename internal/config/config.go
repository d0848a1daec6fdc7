// Package config implements loading of the xbwd JSON configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

var (
	// ErrNotExist is returned by Load if the config file does not exist.
	ErrNotExist = errors.New("config file does not exist")
	// ErrInvalidJSON is returned if the config file is not a JSON object.
	ErrInvalidJSON = errors.New("config file contains invalid json")
)

// SilentWithoutLogFile is the warning returned by ReconcileSilent when silent
// logging was requested without a log file to write to.
const SilentWithoutLogFile = "Silent flag present but config missed log file. Silent ignored."

// Endpoint is a host and TCP port.
type Endpoint struct {
	Host string `json:"Host"`
	Port uint16 `json:"Port"`
}

// String returns the endpoint in host:port form.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

func (e Endpoint) validate(field string) error {
	if e.Host == "" {
		return fmt.Errorf("%s.Host is required", field)
	}
	if e.Port == 0 {
		return fmt.Errorf("%s.Port is required", field)
	}
	return nil
}

// ChainConfig describes one side of the bridge.
type ChainConfig struct {
	Endpoint Endpoint `json:"Endpoint"`
}

// Config is the xbwd configuration.
type Config struct {
	RPCEndpoint  Endpoint     `json:"RPCEndpoint"`
	DBDir        string       `json:"DBDir"`
	LockingChain *ChainConfig `json:"LockingChain,omitempty"`
	IssuingChain *ChainConfig `json:"IssuingChain,omitempty"`

	MetricsEndpoint string `json:"MetricsEndpoint,omitempty"`
	TraceFile       string `json:"TraceFile,omitempty"`

	LogFile           string `json:"LogFile,omitempty"`
	LogLevel          string `json:"LogLevel,omitempty"`
	LogSilent         bool   `json:"LogSilent,omitempty"`
	LogSizeToRotateMb int    `json:"LogSizeToRotateMb,omitempty"`
	LogFilesToKeep    int    `json:"LogFilesToKeep,omitempty"`
}

// Parse constructs a Config from the given JSON document.
func Parse(data []byte) (*Config, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidJSON
	}
	var c Config
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return &c, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("couldn't read config file: %v", err)
	}
	return Parse(data)
}

func (c *Config) validate() error {
	if err := c.RPCEndpoint.validate("RPCEndpoint"); err != nil {
		return err
	}
	if c.DBDir == "" {
		return errors.New("DBDir is required")
	}
	if c.LockingChain != nil {
		if err := c.LockingChain.Endpoint.validate("LockingChain.Endpoint"); err != nil {
			return err
		}
	}
	if c.IssuingChain != nil {
		if err := c.IssuingChain.Endpoint.validate("IssuingChain.Endpoint"); err != nil {
			return err
		}
	}
	if c.LogSizeToRotateMb < 0 || c.LogFilesToKeep < 0 {
		return errors.New("log rotation settings must not be negative")
	}
	return nil
}

// ReconcileSilent applies the silent command-line flag to the config. Silent
// logging without a log file is not allowed, so in that case LogSilent is
// reset and a warning is returned for display to the user. Otherwise the
// returned string is empty.
func (c *Config) ReconcileSilent(silent bool) string {
	if silent {
		c.LogSilent = true
	}
	if c.LogSilent && c.LogFile == "" {
		c.LogSilent = false
		return SilentWithoutLogFile
	}
	return ""
}
