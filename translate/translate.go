// Package translate formats user facing messages in the caller's locale.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LOCALE_ENV overrides the locale detected from the host.
const LOCALE_ENV = "INTCODE_LOCALE"

var printer *message.Printer

func init() {
	if value, ok := os.LookupEnv(LOCALE_ENV); ok && len(value) != 0 {
		SetLocale(value)
		return
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("intcode: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale selects the best match of locales for later messages.
// With no locales, en-US is used.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
