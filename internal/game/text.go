package game

import "github.com/leonelquinteros/gotext"

// textDomain is the gettext domain event text is looked up in.
const textDomain = "valdmir"

// catalog translates event text. Without a loaded catalogue the English
// format string is used as is.
type catalog struct {
	locale *gotext.Locale
}

func newCatalog(dir, lang string) *catalog {
	l := gotext.NewLocale(dir, lang)
	if dir != "" {
		l.AddDomain(textDomain)
	}
	return &catalog{locale: l}
}

// T translates format and substitutes args.
func (c *catalog) T(format string, args ...interface{}) string {
	return c.locale.GetD(textDomain, format, args...)
}
