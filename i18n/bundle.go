package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var embedded embed.FS

var (
	ErrInvalidLanguage     = errors.New("invalid language in filename")
	ErrFallbackMissing     = errors.New("fallback language translations missing")
	ErrInvalidTranslations = errors.New("invalid translations")
	ErrMissingKey          = errors.New("missing key")
	ErrExtraKey            = errors.New("extra key")
)

// Bundle holds the messages of every supported language. English is the fallback: any other
// language has to translate exactly the English keys.
type Bundle struct {
	mu       sync.RWMutex
	fallback language.Tag
	messages map[language.Tag]map[string]string
	catalog  *catalog.Builder
	printers map[language.Tag]*message.Printer
	matcher  language.Matcher
}

var defaultBundle = mustLoad(embedded, "locales")

func mustLoad(fsys fs.FS, dir string) *Bundle {
	b, err := LoadFS(fsys, dir)
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}

	return b
}

// Default returns the shared bundle of the built-in locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a private bundle of the built-in locales, safe to extend with AddLanguage
func NewBundle() (*Bundle, error) {
	return LoadFS(embedded, "locales")
}

// LoadFS loads every <lang>.json file of dir, for example a directory opened with os.DirFS.
// The files hold flat key to message objects and en.json is mandatory.
func LoadFS(fsys fs.FS, dir string) (*Bundle, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	b := &Bundle{
		fallback: language.English,
		messages: make(map[language.Tag]map[string]string),
		catalog:  catalog.NewBuilder(),
		printers: make(map[language.Tag]*message.Printer),
	}

	langs := make(map[string]language.Tag, len(files))
	for _, file := range files {
		lang, err := language.Parse(strings.TrimSuffix(path.Base(file), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, file)
		}
		langs[file] = lang
	}
	// the fallback is loaded first, the others are validated against it
	slices.SortStableFunc(files, func(x, y string) int {
		switch {
		case langs[x] == b.fallback:
			return -1
		case langs[y] == b.fallback:
			return 1
		}
		return strings.Compare(x, y)
	})
	if len(files) == 0 || langs[files[0]] != b.fallback {
		return nil, fmt.Errorf("%w: %s", ErrFallbackMissing, b.fallback)
	}

	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, file, err)
		}
		if err := b.AddLanguage(langs[file], messages); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// T formats key in the fallback language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.fallback, key, args...)
}

// TL formats key in lang. Unsupported languages use the fallback and unknown keys are returned
// as is.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, known := b.messages[b.fallback][key]; !known {
		return key
	}
	p, found := b.printers[lang]
	if !found {
		p = b.printers[b.fallback]
	}

	return p.Sprintf(key, args...)
}

// Localize renders err in lang, following the chain of wrapped translatable errors
func (b *Bundle) Localize(lang language.Tag, err error) string {
	if err == nil {
		return ""
	}
	var tr TranslatableError
	if !errors.As(err, &tr) {
		return err.Error()
	}

	msg := b.TL(lang, tr.Key(), tr.Args()...)
	if wrapped := tr.Unwrap(); wrapped != nil {
		msg += ": " + b.Localize(lang, wrapped)
	}

	return msg
}

// AddLanguage registers messages for lang. Messages of a known language are merged into it; a
// new language has to translate exactly the keys of the fallback.
func (b *Bundle) AddLanguage(lang language.Tag, messages map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing, known := b.messages[lang]
	if !known && lang != b.fallback {
		if err := b.checkKeys(messages); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, err)
		}
	}

	merged := make(map[string]string, len(existing)+len(messages))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range messages {
		if err := b.catalog.SetString(lang, k, v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, k, err)
		}
		merged[k] = v
	}
	b.messages[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	if !known {
		b.matcher = language.NewMatcher(b.sortedLanguages())
	}

	return nil
}

// Match returns the supported language closest to the requested ones, or the fallback. Regional
// variants match their base language (de-CH -> de).
func (b *Bundle) Match(requested ...language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	tag, _, confidence := b.matcher.Match(requested...)
	if confidence == language.No {
		return b.fallback
	}
	base, _ := tag.Base()
	for _, lang := range b.sortedLanguages() {
		if lb, _ := lang.Base(); lb == base {
			return lang
		}
	}

	return b.fallback
}

// HasLanguage reports whether lang has messages
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, found := b.messages[lang]
	return found
}

// Languages returns the supported languages, fallback first
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.sortedLanguages()
}

func (b *Bundle) sortedLanguages() []language.Tag {
	langs := make([]language.Tag, 0, len(b.messages))
	for lang := range b.messages {
		langs = append(langs, lang)
	}
	slices.SortFunc(langs, func(x, y language.Tag) int {
		switch {
		case x == b.fallback:
			return -1
		case y == b.fallback:
			return 1
		}
		return strings.Compare(x.String(), y.String())
	})

	return langs
}

func (b *Bundle) checkKeys(messages map[string]string) error {
	var problems []error
	for key := range b.messages[b.fallback] {
		if _, found := messages[key]; !found {
			problems = append(problems, fmt.Errorf("%w: %q", ErrMissingKey, key))
		}
	}
	for key := range messages {
		if _, found := b.messages[b.fallback][key]; !found {
			problems = append(problems, fmt.Errorf("%w: %q", ErrExtraKey, key))
		}
	}

	return errors.Join(problems...)
}
