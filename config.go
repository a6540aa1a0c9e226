package translate

import (
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config carries the environment driven settings for a translation Manager.
type Config struct {
	TranslationsFolder string   `env:"TRANSLATION_FOLDER"          envDefault:"localization"`
	Languages          []string `env:"TRANSLATION_LANGUAGES"       envSeparator:"," envDefault:"en"`
	DefaultLanguage    string   `env:"TRANSLATION_DEFAULT_LANGUAGE" envDefault:"en"`
}

// ConfigFromEnv reads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	return env.ParseAs[Config]()
}

// FillEnv populates v with environment data, for callers carrying their own
// extended configuration structs.
func FillEnv(v any) error {
	return env.Parse(v)
}

// NewManagerFromConfig builds a Manager from cfg.
func NewManagerFromConfig(cfg Config, opts ...Option) (Manager, error) {
	tag, err := language.Parse(cfg.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	opts = append([]Option{
		WithDefaultLanguage(tag),
		WithTranslationsFolder(cfg.TranslationsFolder),
		WithLanguages(cfg.Languages...),
	}, opts...)

	return NewManager(opts...), nil
}
