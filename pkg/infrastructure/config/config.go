package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Sampler configuration structure.
type Sampler struct {
	RasmiPath    string `mapstructure:"rasmi_path" yaml:"rasmi_path"`
	FactorsPath  string `mapstructure:"factors_path" yaml:"factors_path"`
	DrawCount    int    `mapstructure:"draw_count" yaml:"draw_count"`
	Seed         int64  `mapstructure:"seed" yaml:"seed"`
	XPSPathway   string `mapstructure:"xps_pathway" yaml:"xps_pathway"`
	KeepPairs    bool   `mapstructure:"keep_pairs" yaml:"keep_pairs"`
	LogProgress  bool   `mapstructure:"log_progress" yaml:"log_progress"`
}

// Defaults carried over from the source study configuration.
const (
	DefaultDrawCount  = 10000
	DefaultSeed       = 100
	DefaultXPSPathway = "XPS-CO2"
)

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.rasmi-sampler/config.yaml, creating the directory
// if necessary.
func Save(c *Sampler, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rasmi-sampler")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Sampler, error) {
	v := viper.New()
	v.SetEnvPrefix("RASMI")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("rasmi_path", "data/RASMI/RASMI_MI_data.csv")
	v.SetDefault("factors_path", "data/lca_factors/compiled_ecoinvent_lca_factors.csv")
	v.SetDefault("draw_count", DefaultDrawCount)
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("xps_pathway", DefaultXPSPathway)
	v.SetDefault("keep_pairs", false)
	v.SetDefault("log_progress", true)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rasmi-sampler")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Sampler
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.DrawCount < 0 {
		return nil, fmt.Errorf("draw_count cannot be negative, got %d", c.DrawCount)
	}
	return &c, nil
}
