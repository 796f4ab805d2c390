package i18n

import (
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/napalu/cliglue/types"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestBundle_T(t *testing.T) {
	b, err := NewBundle()
	assert.NoError(t, err)

	assert.Equal(t, "Usage:", b.T(types.HelpUsageKey))
	assert.Equal(t, `required parameter "--count" is not given`, b.T(types.ErrMissingParameterKey, "--count"))
	assert.Equal(t, "no.such.key", b.T("no.such.key"), "unknown keys are returned verbatim")
}

func TestBundle_TL(t *testing.T) {
	b, err := NewBundle()
	assert.NoError(t, err)

	assert.Equal(t, "Verwendung:", b.TL(language.German, types.HelpUsageKey))
	assert.Equal(t, "Usage:", b.TL(language.Japanese, types.HelpUsageKey), "unsupported languages fall back to the default")
}

func TestBundle_Languages(t *testing.T) {
	b, err := NewBundle()
	assert.NoError(t, err)

	assert.True(t, b.HasLanguage(language.English))
	assert.True(t, b.HasLanguage(language.German))
	assert.Equal(t, []language.Tag{language.English, language.German}, b.Languages())

	assert.Equal(t, language.German, b.Match(language.MustParse("de-CH")))
	assert.Equal(t, language.English, b.Match(language.Korean))
}

func TestBundle_AddLanguage(t *testing.T) {
	b, err := NewBundle()
	assert.NoError(t, err)

	err = b.AddLanguage(language.French, map[string]string{types.HelpUsageKey: "Utilisation :"})
	assert.ErrorIs(t, err, ErrInvalidTranslations, "a new language must translate every key")
	assert.False(t, b.HasLanguage(language.French))

	err = b.AddLanguage(language.German, map[string]string{types.HelpUsageKey: "Aufruf:"})
	assert.NoError(t, err, "existing languages can be partially updated")
	assert.Equal(t, "Aufruf:", b.TL(language.German, types.HelpUsageKey))
}

func TestTrError(t *testing.T) {
	sentinel := NewError(types.ErrUnrecognizedTokenKey)
	other := NewError(types.ErrNoActionKey)

	err := sentinel.WithArgs("--nope")
	assert.Equal(t, `unrecognized argument "--nope"`, err.Error())
	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, other))

	wrapped := fmt.Errorf("resolve: %w", err.Wrap(errors.New("boom")))
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, `unrecognized argument "--nope": boom`, Default().Localize(language.English, wrapped))
	assert.Equal(t, `unbekanntes Argument "--nope": boom`, Default().Localize(language.German, wrapped))
	assert.Equal(t, "plain", Default().Localize(language.German, errors.New("plain")))
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"l10n/en.json": {Data: []byte(`{"greeting": "hello %s", "bye": "bye"}`)},
		"l10n/fr.json": {Data: []byte(`{"greeting": "bonjour %s", "bye": "salut"}`)},
		"l10n/README":  {Data: []byte("ignored")},
	}

	b, err := LoadFS(fsys, "l10n")
	assert.NoError(t, err)
	assert.Equal(t, "bonjour ada", b.TL(language.French, "greeting", "ada"))
	assert.Equal(t, "hello ada", b.T("greeting", "ada"))
	assert.Equal(t, language.French, b.Match(language.MustParse("fr-CA")))
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{
			name: "no fallback",
			fsys: fstest.MapFS{"l/de.json": {Data: []byte(`{"a": "b"}`)}},
			want: ErrFallbackMissing,
		},
		{
			name: "empty directory",
			fsys: fstest.MapFS{},
			want: ErrFallbackMissing,
		},
		{
			name: "bad file name",
			fsys: fstest.MapFS{"l/en.json": {Data: []byte(`{}`)}, "l/not a tag!.json": {Data: []byte(`{}`)}},
			want: ErrInvalidLanguage,
		},
		{
			name: "malformed json",
			fsys: fstest.MapFS{"l/en.json": {Data: []byte(`{"a": 1}`)}},
			want: ErrInvalidTranslations,
		},
		{
			name: "extra key",
			fsys: fstest.MapFS{
				"l/en.json": {Data: []byte(`{"a": "A"}`)},
				"l/de.json": {Data: []byte(`{"a": "A", "b": "B"}`)},
			},
			want: ErrExtraKey,
		},
		{
			name: "missing key",
			fsys: fstest.MapFS{
				"l/en.json": {Data: []byte(`{"a": "A", "b": "B"}`)},
				"l/de.json": {Data: []byte(`{"a": "A"}`)},
			},
			want: ErrMissingKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys, "l")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
