package calendar

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Weekday is a day of the week, 0=Sunday through 6=Saturday.
type Weekday int

// Days of the week.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AllWeekdays lists the weekdays in Sunday-first order.
var AllWeekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// ShortString returns the abbreviated name in the process locale.
func (w Weekday) ShortString() string {
	return DefaultFormatter().ShortWeekday(w)
}

// ShortStringIn returns the abbreviated name using f.
func (w Weekday) ShortStringIn(f Formatter) string {
	return f.ShortWeekday(w)
}

// weekdayFromNative maps 1=Sunday..7=Saturday numbering onto Weekday.
func weekdayFromNative(n int) (Weekday, error) {
	if n < 1 || n > 7 {
		return 0, ErrUnsupportedWeekday
	}
	return Weekday(n - 1), nil
}

// Formatter produces short, localized month and weekday names.
type Formatter interface {
	ShortMonth(m time.Month) string
	ShortWeekday(w Weekday) string
}

type localeNames struct {
	months   [12]string
	weekdays [7]string
}

// supportedLocales is ordered so that English is the fallback match.
var supportedLocales = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Portuguese,
}

var localeTable = []localeNames{
	{
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
	{
		months:   [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		weekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	{
		months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		weekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	},
	{
		months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
	{
		months:   [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		weekdays: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	},
	{
		months:   [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
		weekdays: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
	},
	{
		months:   [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		weekdays: [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
	},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// LocaleFormatter formats names from a built-in table of locales.
type LocaleFormatter struct {
	tag   language.Tag
	names *localeNames
}

// NewFormatter returns the formatter closest to tag. Unsupported tags fall
// back to English.
func NewFormatter(tag language.Tag) *LocaleFormatter {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return &LocaleFormatter{tag: supportedLocales[idx], names: &localeTable[idx]}
}

// Tag returns the matched locale.
func (f *LocaleFormatter) Tag() language.Tag {
	return f.tag
}

func (f *LocaleFormatter) ShortMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return f.names.months[m-1]
}

func (f *LocaleFormatter) ShortWeekday(w Weekday) string {
	if w < Sunday || w > Saturday {
		return ""
	}
	return f.names.weekdays[w]
}

// ProcessLocale returns the locale named by LC_ALL, LC_TIME or LANG, in
// that order of precedence. "C", "POSIX" and unparsable values mean English.
func ProcessLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		return ParseLocale(v)
	}
	return language.English
}

// ParseLocale parses POSIX ("de_DE.UTF-8") or BCP 47 ("de-DE") locale names.
func ParseLocale(s string) language.Tag {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.English
	}
	return tag
}

// DefaultFormatter returns a formatter for the process locale.
func DefaultFormatter() *LocaleFormatter {
	return NewFormatter(ProcessLocale())
}
