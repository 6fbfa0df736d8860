// Package config holds runtime settings, overridable by flags and by
// CRIBLE_* environment variables.
package config

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
	// positional args left over after flag parsing (card tokens)
	args []string
}

func New() *Config {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("cpu-profile", "")
	v.SetDefault("mem-profile", "")
	v.SetDefault("starter", "")
	v.SetDefault("crib", false)
	v.SetEnvPrefix("crible")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load parses command-line flags into the config. Anything that isn't a
// flag is kept as a positional argument.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("crible", pflag.ContinueOnError)
	fs.Bool("debug", false, "enable debug logging")
	fs.Int("threads", runtime.NumCPU(), "worker threads for the discard search")
	fs.String("cpu-profile", "", "write a CPU profile to this path")
	fs.String("mem-profile", "", "write a memory profile to this path")
	fs.String("starter", "", "starter card token to score a 4-card hand against")
	fs.Bool("crib", false, "score the hand as a crib")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments from the last Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// Set overrides a single setting; used by tests and the shell.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}
