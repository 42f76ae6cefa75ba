package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.td.teradata.com/sandbox/emu6502/internal/log"
)

const (
	defMemorySize     = 65536
	defMemoryDumpPage = -1

	defTraceHistory = 64

	defSerialBaudRate = 9600
	defSerialDataBits = 8
	defSerialStopBits = 1
	defSerialParity   = 0

	defTerminalWidth  = 80
	defTerminalHeight = 50

	defLogLevel = "INFO"

	EnvVarPrefix = "E6"
)

var CLIConfig *Config
var replacer = strings.NewReplacer(".", "_")

type Config struct {
	Memory   *Memory   `mapstructure:"memory" yaml:"memory"`
	CPU      *CPU      `mapstructure:"cpu" yaml:"cpu"`
	Trace    *Trace    `mapstructure:"trace" yaml:"trace"`
	Serial   *Serial   `mapstructure:"serial" yaml:"serial"`
	Terminal *Terminal `mapstructure:"terminal" yaml:"terminal"`
	Log      *Log      `mapstructure:"log" yaml:"log"`
	RomFile  string    `mapstructure:"rom_file" yaml:"rom_file"`
}

type Memory struct {
	Size     int `mapstructure:"size" yaml:"size"`
	DumpPage int `mapstructure:"dump_page" yaml:"dump_page"`
}

// CPU holds the run limits applied by the driver. A MaxCycles of zero means
// run until another stop condition is met.
type CPU struct {
	MaxCycles  uint64 `mapstructure:"max_cycles" yaml:"max_cycles"`
	StopOnTrap bool   `mapstructure:"stop_on_trap" yaml:"stop_on_trap"`
	StopOnBrk  bool   `mapstructure:"stop_on_brk" yaml:"stop_on_brk"`
}

type Trace struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	History int  `mapstructure:"history" yaml:"history"`
}

type Serial struct {
	PortName string `mapstructure:"port_name" yaml:"port_name"`
	BaudRate int    `mapstructure:"baud_rate" yaml:"baud_rate"`
	DataBits int    `mapstructure:"data_bits" yaml:"data_bits"`
	StopBits int    `mapstructure:"stop_bits" yaml:"stop_bits"`
	Parity   int    `mapstructure:"parity" yaml:"parity"`
}

type Terminal struct {
	Width  int  `mapstructure:"width" yaml:"width"`
	Height int  `mapstructure:"height" yaml:"height"`
	Colour bool `mapstructure:"colour" yaml:"colour"`
}

// Log satisfies log.Configurator so the logger can be set up straight from
// the loaded configuration.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Memory: &Memory{
			Size:     defMemorySize,
			DumpPage: defMemoryDumpPage,
		},
		CPU: &CPU{
			MaxCycles:  0,
			StopOnTrap: true,
			StopOnBrk:  false,
		},
		Trace: &Trace{
			Enabled: false,
			History: defTraceHistory,
		},
		Serial: &Serial{
			PortName: "",
			BaudRate: defSerialBaudRate,
			DataBits: defSerialDataBits,
			StopBits: defSerialStopBits,
			Parity:   defSerialParity,
		},
		Terminal: &Terminal{
			Width:  defTerminalWidth,
			Height: defTerminalHeight,
			Colour: true,
		},
		Log: &Log{
			Level: defLogLevel,
		},
		RomFile: "",
	}
}

// NewConfig loads the defaults, then cfgFile when it exists, then any E6_
// environment variables, into CLIConfig.
func NewConfig(cfgFile string) error {
	cfg, err := Load(cfgFile)
	if err != nil {
		return err
	}
	CLIConfig = cfg
	return nil
}

// Load builds a Config without touching CLIConfig.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	if b, err := yaml.Marshal(DefaultConfig()); err != nil {
		return nil, err
	} else {
		defaultConfig := bytes.NewReader(b)
		v.SetConfigType("yaml")
		if err := v.MergeConfig(defaultConfig); err != nil {
			return nil, err
		}
	}

	if cfgFile != "" {
		if fi, err := os.Stat(cfgFile); err == nil {
			if !fi.IsDir() {
				// overwrite values from config
				v.SetConfigFile(cfgFile)
				if err := v.MergeInConfig(); err != nil {
					return nil, fmt.Errorf("config: parsing %s: %w", fi.Name(), err)
				}
			} else {
				log.Warnf("Config file points to a directory, not a file [%s]", cfgFile)
			}
		} else {
			log.Warnf("No config file found [%s]: %v", cfgFile, err)
		}
	}

	// Use environment variables as final override
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)

	// Preload environment bindings so they are processed on load
	bindVars(v, reflect.TypeOf(*cfg), "")
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func bindVars(v *viper.Viper, t reflect.Type, prefix string) {

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			tag = prefix + strings.ToUpper(tag)

			if field.Type.Kind() == reflect.Struct {
				bindVars(v, field.Type, tag+".")
			} else if field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
				bindVars(v, field.Type.Elem(), tag+".")
			} else {
				log.Debugf("Scanning for environment variable: %s_%s -> %s", EnvVarPrefix, replacer.Replace(tag), tag)
				if err := v.BindEnv(tag); err != nil {
					log.Warnf("Unable to bind to environment variable: %s. Error: %v", tag, err)
				}
			}
		}
	}
}

var (
	ErrMemorySize   = errors.New("config: memory.size must be between 1 and 65536")
	ErrTraceHistory = errors.New("config: trace.history must not be negative")
	ErrDumpPage     = errors.New("config: memory.dump_page must be -1 or a page between 0 and 255")
)

// Validate checks the values the emulator cannot run with.
func (c *Config) Validate() error {
	if c.Memory == nil || c.Memory.Size < 1 || c.Memory.Size > defMemorySize {
		return ErrMemorySize
	}
	if c.Memory.DumpPage < -1 || c.Memory.DumpPage > 255 {
		return ErrDumpPage
	}
	if c.Trace != nil && c.Trace.History < 0 {
		return ErrTraceHistory
	}
	return nil
}

// Output keeps the logger on standard error.
func (l *Log) Output() io.Writer {
	return nil
}

func (l *Log) LogLevel() string {
	return l.Level
}

// TimestampFormat and CallerFormat return empty strings, which leave the
// logger's own formats in place.
func (l *Log) TimestampFormat() string {
	return ""
}

func (l *Log) CallerFormat() string {
	return ""
}
