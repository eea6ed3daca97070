package localedate

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z",
}

type format struct {
	locale monday.Locale
	short  string
	long   string
}

var formats = map[string]format{
	"es-ES": {locale: monday.LocaleEsES, short: "2/1/2006", long: "2 de January de 2006"},
	"en-US": {locale: monday.LocaleEnUS, short: "1/2/2006", long: "January 2, 2006"},
	"en-GB": {locale: monday.LocaleEnGB, short: "02/01/2006", long: "2 January 2006"},
}

// Formatter renders calendar dates for one locale. Unknown locales fall back to es-ES.
type Formatter struct {
	f format
}

func NewFormatter(language string) *Formatter {
	f, ok := formats[language]
	if !ok {
		f = formats["es-ES"]
	}
	return &Formatter{f: f}
}

// Parse accepts plain dates and full ISO-8601 timestamps. The result is in UTC so that a
// bare date never shifts to the previous day.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func (f *Formatter) Short(t time.Time) string {
	return monday.Format(t, f.f.short, f.f.locale)
}

func (f *Formatter) Long(t time.Time) string {
	return monday.Format(t, f.f.long, f.f.locale)
}
