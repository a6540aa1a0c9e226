package translate

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Option configures a Manager under construction.
type Option func(*managerOptions)

type managerOptions struct {
	bundle             *i18n.Bundle
	defaultLanguage    language.Tag
	translationsFolder string
	languages          []string
	messageFiles       []string
	unmarshalers       map[string]i18n.UnmarshalFunc
}

func defaultManagerOptions() *managerOptions {
	return &managerOptions{
		defaultLanguage:    language.English,
		translationsFolder: "localization",
		unmarshalers: map[string]i18n.UnmarshalFunc{
			"toml": toml.Unmarshal,
			"yaml": yaml.Unmarshal,
		},
	}
}

// WithBundle supplies a preloaded bundle; all file loading options are
// ignored when set.
func WithBundle(bundle *i18n.Bundle) Option {
	return func(o *managerOptions) {
		o.bundle = bundle
	}
}

// WithDefaultLanguage sets the bundle's fallback language tag.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(o *managerOptions) {
		o.defaultLanguage = tag
	}
}

// WithTranslationsFolder sets the directory message files are loaded from,
// "localization" by default.
func WithTranslationsFolder(folder string) Option {
	return func(o *managerOptions) {
		if folder != "" {
			o.translationsFolder = folder
		}
	}
}

// WithLanguages names the languages whose messages.<lang>.toml files are
// loaded from the translations folder.
func WithLanguages(languages ...string) Option {
	return func(o *managerOptions) {
		o.languages = append(o.languages, languages...)
	}
}

// WithMessageFile loads an additional message file by path; the format is
// taken from the file extension.
func WithMessageFile(path string) Option {
	return func(o *managerOptions) {
		o.messageFiles = append(o.messageFiles, path)
	}
}

// WithUnmarshaler registers an unmarshal func for a message file format.
// TOML and YAML are registered out of the box.
func WithUnmarshaler(format string, unmarshal i18n.UnmarshalFunc) Option {
	return func(o *managerOptions) {
		o.unmarshalers[format] = unmarshal
	}
}
