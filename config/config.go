// Package config implements configuration parsing for compengine.
package config

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"

	"github.com/cocosip/go-compengine/codec"
	"github.com/cocosip/go-compengine/lzss"
)

var log = logging.MustGetLogger("compengine/config")

// Configuration specifies the complete compengine configuration.
type Configuration struct {
	File string `toml:"-" flag:"config" default:"/etc/compengine/compengine.conf"`

	Algorithm string `toml:"algorithm" flag:"algorithm" default:"huffman"`

	LZSS LZSS `toml:"lzss"`
	Log  Log  `toml:"log"`
}

// LZSS specifies the dictionary coder's match search.
type LZSS struct {
	WindowSize int64 `toml:"window_size" flag:"lzss-window-size" default:"4096"`
	Lookahead  int64 `toml:"lookahead"   flag:"lzss-lookahead"   default:"18"`
	MinMatch   int64 `toml:"min_match"   flag:"lzss-min-match"   default:"3"`
}

// Log specifies logging options.
type Log struct {
	Level string `toml:"level" flag:"log-level" default:"INFO"`
}

const envPrefix = "COMPENGINE_"

// Parse all configuration. Flags are registered on fs, which may already
// hold the caller's own flags, and parsed from args.
//
// Environment variables take precedence over the configuration file,
// but command line flags take precedence over both.
func Parse(fs *flag.FlagSet, args []string) (Configuration, error) {
	config := Configuration{}

	setupFlags(fs, reflect.ValueOf(config))
	if err := fs.Parse(args); err != nil {
		return config, err
	}

	// environment fills flags the command line left unset
	if err := setUnsetFlagsFromEnv(fs); err != nil {
		return config, err
	}

	setDefaults(reflect.ValueOf(&config).Elem())

	if err := parseConfigFile(fs, &config); err != nil {
		return config, err
	}

	// flags, including those set from the environment, override the file
	if err := setFromFlags(fs, reflect.ValueOf(&config).Elem()); err != nil {
		return config, err
	}

	return config, config.Validate()
}

func parseConfigFile(fs *flag.FlagSet, config *Configuration) error {
	configFile := fs.Lookup("config").Value.String()
	config.File = configFile

	md, err := toml.DecodeFile(configFile, config)
	if os.IsNotExist(err) {
		log.Infof("config file '%s' does not exist and will not be used", configFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("config file %s: %w", configFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warningf("config file %s: unknown keys %v", configFile, undecoded)
	}
	return nil
}

func setUnsetFlagsFromEnv(fs *flag.FlagSet) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] || err != nil {
			return
		}
		if val := envValueForFlag(f.Name); val != "" {
			if setErr := fs.Set(f.Name, val); setErr != nil {
				err = fmt.Errorf("%s%s: %w", envPrefix, envName(f.Name), setErr)
			}
		}
	})
	return err
}

func envName(flagName string) string {
	return strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func envValueForFlag(name string) string {
	return os.Getenv(envPrefix + envName(name))
}

// Validate checks the values the engine cannot run with.
func (c Configuration) Validate() error {
	if _, err := c.AlgorithmValue(); err != nil {
		return fmt.Errorf("algorithm: %w", err)
	}
	if err := c.LZSSParams().Validate(); err != nil {
		return fmt.Errorf("[lzss]: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("[log] level: %w", err)
	}
	return nil
}

// AlgorithmValue parses the default algorithm name.
func (c Configuration) AlgorithmValue() (codec.Algorithm, error) {
	return codec.ParseAlgorithm(c.Algorithm)
}

// LZSSParams converts the [lzss] section.
func (c Configuration) LZSSParams() lzss.Params {
	return lzss.Params{
		WindowSize: int(c.LZSS.WindowSize),
		Lookahead:  int(c.LZSS.Lookahead),
		MinMatch:   int(c.LZSS.MinMatch),
	}
}

// LogLevel parses the [log] level, e.g. "DEBUG" or "warning".
func (c Configuration) LogLevel() (logging.Level, error) {
	return logging.LogLevel(c.Log.Level)
}
