package terminal

import (
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

const textDomain = "console"

// ActivateLocale configures the message catalog from the process
// environment. Untranslated strings pass through unchanged, so a
// missing catalog is not an error.
func ActivateLocale() {
	gotext.Configure("po", processLanguage(), textDomain)
}

// processLanguage resolves the locale the way setlocale(LC_ALL, "")
// would: LC_ALL, then LC_MESSAGES, then LANG, with the encoding
// suffix stripped.
func processLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		return v
	}
	return "en_US"
}
