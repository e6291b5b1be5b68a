package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultTemplateURL = "https://github.com/XAN44/next-elysia-template.git"
	defaultBranch      = "main"
)

// Settings holds the tool-level knobs. There is no config file; values come
// from built-in defaults, overridable through CNE_-prefixed environment
// variables (CNE_TEMPLATE_URL, CNE_BRANCH).
type Settings struct {
	TemplateURL string `mapstructure:"template_url"`
	Branch      string `mapstructure:"branch"`
}

// Load resolves settings from defaults and the environment.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetDefault("template_url", defaultTemplateURL)
	v.SetDefault("branch", defaultBranch)
	v.SetEnvPrefix("CNE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
