package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/leocov-dev/dpwrap/core"
)

var Version string

func SetVersion(version string) {
	Version = version
}

const (
	KeySiteURL             = "site-url"
	KeyAPIURL              = "api-url"
	KeyShimURL             = "shim-url"
	KeyResourcePackExclude = "resource-pack-exclude"
)

// SetDefaults registers the default endpoints with viper
func SetDefaults() {
	defaults := core.DefaultConfig()
	viper.SetDefault(KeySiteURL, defaults.SiteURL)
	viper.SetDefault(KeyAPIURL, defaults.APIBaseURL)
	viper.SetDefault(KeyShimURL, defaults.ShimURL)
	viper.SetDefault(KeyResourcePackExclude, []string{})
}

// BindEnv lets DPWRAP_* environment variables override every setting, e.g.
// DPWRAP_RESOURCE_PACK_EXCLUDE for resource-pack-exclude
func BindEnv() {
	viper.SetEnvPrefix("dpwrap")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Load decodes the current viper settings into a core.Config
func Load() (core.Config, error) {
	return decode(viper.AllSettings())
}

func decode(settings map[string]interface{}) (core.Config, error) {
	cfg := core.DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// Environment variables and scalar config values arrive as comma separated strings
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return core.Config{}, err
	}
	if err := decoder.Decode(settings); err != nil {
		return core.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.SiteURL = strings.TrimSuffix(cfg.SiteURL, "/")
	if cfg.SiteURL == "" || cfg.APIBaseURL == "" || cfg.ShimURL == "" {
		return core.Config{}, fmt.Errorf("invalid configuration: %s, %s and %s must not be empty", KeySiteURL, KeyAPIURL, KeyShimURL)
	}
	return cfg, nil
}
