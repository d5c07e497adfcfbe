package messages

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewBundle_GermanCatalogueLoaded(t *testing.T) {
	bundle := NewBundle()
	assert.Contains(t, bundle.LanguageTags(), language.German)

	loc := i18n.NewLocalizer(bundle, "de")
	for _, msg := range german {
		got, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    msg.ID,
			TemplateData: map[string]any{"Path": "p", "Err": "e", "Message": "m", "Name": "n", "Latest": "l"},
		})
		require.NoError(t, err, msg.ID)
		assert.NotEmpty(t, got, msg.ID)
	}
}
