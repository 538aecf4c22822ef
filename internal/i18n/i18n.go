// Package i18n holds the localized UI strings for every surface.
package i18n

import "fmt"

// DefaultLanguage is used whenever a requested language is not supported.
const DefaultLanguage = "en"

// supported lists language codes in selector order.
var supported = []string{"en", "hi", "mr", "es", "fr", "de"}

var names = map[string]string{
	"en": "English",
	"hi": "हिन्दी",
	"mr": "मराठी",
	"es": "Español",
	"fr": "Français",
	"de": "Deutsch",
}

// Table is the string table for one language.
type Table struct {
	code    string
	strings map[string]string
}

// Lookup returns the table for code, or the default language's table when
// code is unknown.
func Lookup(code string) Table {
	if t, ok := tables[code]; ok {
		return Table{code: code, strings: t}
	}
	return Table{code: DefaultLanguage, strings: tables[DefaultLanguage]}
}

// Supported returns the supported language codes in selector order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code has its own string table.
func IsSupported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Name returns the display name of a language, or the code itself.
func Name(code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}

// Code returns the language code this table resolved to.
func (t Table) Code() string { return t.code }

// T returns the localized string for key. Keys missing from a translation
// fall back to English, then to the key itself.
func (t Table) T(key string) string {
	if v, ok := t.strings[key]; ok && v != "" {
		return v
	}
	if v, ok := tables[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// Tf formats the localized string for key with args.
func (t Table) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Keys returns every key of the default table. Surfaces use it to apply a
// full translation pass.
func Keys() []string {
	keys := make([]string, 0, len(tables[DefaultLanguage]))
	for k := range tables[DefaultLanguage] {
		keys = append(keys, k)
	}
	return keys
}
