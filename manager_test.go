package translate_test

import (
	"context"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/suite"

	"github.com/pitabwire/translate"
)

// ManagerTestSuite covers bundle loading and the lenient translation surface.
type ManagerTestSuite struct {
	suite.Suite
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, &ManagerTestSuite{})
}

func (s *ManagerTestSuite) newManager() translate.Manager {
	return translate.NewManager(
		translate.WithTranslationsFolder("test_data"),
		translate.WithLanguages("en", "sw"),
	)
}

func (s *ManagerTestSuite) TestTranslations() {
	testCases := []struct {
		name         string
		messageID    string
		templateData map[string]any
		pluralCount  int
		expectedEn   string
		expectedSw   string
	}{
		{
			name:      "basic translation with template data",
			messageID: "Example",
			templateData: map[string]any{
				"Name": "Air",
			},
			pluralCount: 1,
			expectedEn:  "Air has nothing",
			expectedSw:  "Air haina chochote",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			lm := s.newManager()

			bundle := lm.Bundle()

			enLocalizer := i18n.NewLocalizer(bundle, "en", "sw")
			englishVersion, err := enLocalizer.Localize(&i18n.LocalizeConfig{
				DefaultMessage: &i18n.Message{
					ID: tc.messageID,
				},
				TemplateData: tc.templateData,
				PluralCount:  tc.pluralCount,
			})
			s.Require().NoError(err, "English localization should succeed")
			s.Require().Equal(tc.expectedEn, englishVersion)

			swLocalizer := i18n.NewLocalizer(bundle, "sw")
			swVersion, err := swLocalizer.Localize(&i18n.LocalizeConfig{
				DefaultMessage: &i18n.Message{
					ID: tc.messageID,
				},
				TemplateData: tc.templateData,
				PluralCount:  tc.pluralCount,
			})
			s.Require().NoError(err, "Swahili localization should succeed")
			s.Require().Equal(tc.expectedSw, swVersion)
		})
	}
}

func (s *ManagerTestSuite) TestTranslationsHelpers() {
	testCases := []struct {
		name         string
		messageID    string
		language     string
		templateData map[string]any
		pluralCount  int
		expected     string
	}{
		{
			name:        "translate without template data",
			messageID:   "Example",
			language:    "en",
			pluralCount: 1,
			expected:    "<no value> has nothing",
		},
		{
			name:      "translate with template data",
			messageID: "Example",
			language:  "en",
			templateData: map[string]any{
				"Name": "MapMan",
			},
			pluralCount: 1,
			expected:    "MapMan has nothing",
		},
		{
			name:      "translate with template data and plural",
			messageID: "Example",
			language:  "en",
			templateData: map[string]any{
				"Name": "CountMen",
			},
			pluralCount: 2,
			expected:    "CountMen have nothing",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ctx := context.Background()
			lm := s.newManager()

			var result string
			switch {
			case tc.templateData == nil:
				result = lm.Translate(ctx, tc.language, tc.messageID)
			case tc.pluralCount > 1:
				result = lm.TranslateWithMapAndCount(ctx, tc.language, tc.messageID, tc.templateData, tc.pluralCount)
			default:
				result = lm.TranslateWithMap(ctx, tc.language, tc.messageID, tc.templateData)
			}

			s.Require().Equal(tc.expected, result)
		})
	}
}

func (s *ManagerTestSuite) TestTranslateUnknownRequestKind() {
	ctx := context.Background()
	lm := s.newManager()

	// An unsupported request object degrades to the message id.
	result := lm.Translate(ctx, 42, "Greeting")
	s.Require().Equal("Greeting", result)
}

func (s *ManagerTestSuite) TestScopedOverBundle() {
	ctx := context.Background()
	lm := s.newManager()

	scoped := lm.Scoped("SettingsPane", "en")
	s.Require().Equal("SettingsPane", scoped.Scope())

	value, err := scoped.Get(ctx, "Greeting")
	s.Require().NoError(err)
	s.Require().Equal("Welcome to settings", value)

	// No scoped mapping for Farewell; the bare key answers.
	value, err = scoped.Get(ctx, "Farewell")
	s.Require().NoError(err)
	s.Require().Equal("Goodbye", value)

	_, err = scoped.Get(ctx, "Absent")
	s.Require().Error(err)
	s.Require().ErrorIs(err, translate.ErrKeyNotFound)
	s.Require().Equal("Neither key 'SettingsPane.Absent' nor 'Absent' could be found", err.Error())
}

func (s *ManagerTestSuite) TestMissingMessageFilePanics() {
	s.Require().Panics(func() {
		translate.NewManager(
			translate.WithTranslationsFolder("test_data"),
			translate.WithLanguages("de"),
		)
	})
}

func (s *ManagerTestSuite) TestYamlMessageFile() {
	ctx := context.Background()

	lm := translate.NewManager(
		translate.WithMessageFile("test_data/messages.fr.yaml"),
	)

	value, err := lm.Translator("fr").Get(ctx, "Greeting")
	s.Require().NoError(err)
	s.Require().Equal("Bonjour", value)

	value, err = lm.Scoped("SettingsPane", "fr").Get(ctx, "Greeting")
	s.Require().NoError(err)
	s.Require().Equal("Bienvenue dans les réglages", value)
}
