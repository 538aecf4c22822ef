package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFallsBackToEnglish(t *testing.T) {
	for _, code := range []string{"xx", "", "EN", "pt"} {
		tbl := Lookup(code)
		assert.Equal(t, DefaultLanguage, tbl.Code(), "code %q", code)
		assert.Equal(t, "Welcome to CampusNexus AI!", tbl.T("welcomeTitle"))
	}
}

func TestEveryLanguageHasTheOriginalKeys(t *testing.T) {
	// The English-only extras (thinking, chatError, ...) are allowed to fall back.
	englishOnly := map[string]bool{
		"thinking": true, "chatError": true, "uploading": true, "uploaded": true,
		"uploadFailed": true, "page": true, "rejectPrompt": true, "rejectDefault": true,
	}
	for _, code := range Supported() {
		require.True(t, IsSupported(code), code)
		for _, key := range Keys() {
			if englishOnly[key] {
				continue
			}
			_, ok := tables[code][key]
			assert.True(t, ok, "language %s missing key %s", code, key)
		}
	}
}

func TestTFallbacks(t *testing.T) {
	hi := Lookup("hi")
	assert.Equal(t, "भेजें", hi.T("sendButton"))
	assert.Equal(t, "Thinking...", hi.T("thinking"))
	assert.Equal(t, "noSuchKey", hi.T("noSuchKey"))
}

func TestTf(t *testing.T) {
	assert.Equal(t, "Uploaded (12 chunks)", Lookup("de").Tf("uploaded", 12))
}

func TestName(t *testing.T) {
	assert.Equal(t, "Deutsch", Name("de"))
	assert.Equal(t, "zz", Name("zz"))
}
