// Package translate formats user-visible hackem messages for the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is used when the host reports no usable locale.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	printer = NewPrinter(hostLocales()...)
}

// hostLocales returns the preferred locales of the host, best first.
func hostLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hackem: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return
}

// NewPrinter returns a printer for the best match of the given locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		return message.NewPrinter(language.MustParse(Fallback))
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
