package timezone

import (
	"hoteladmin/config"
	"hoteladmin/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

// localeLayouts maps a BCP 47 tag to its short numeric date layout.
var localeLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"en-AU": "02/01/2006",
	"de-DE": "2.1.2006",
	"fr-FR": "02/01/2006",
	"es-ES": "2/1/2006",
	"id-ID": "2/1/2006",
	"nl-NL": "2-1-2006",
	"ja-JP": "2006/1/2",
	"zh-CN": "2006/1/2",
	"sv-SE": "2006-01-02",
}

// languageLayouts covers regions missing from localeLayouts.
var languageLayouts = map[string]string{
	"en": "1/2/2006",
	"de": "2.1.2006",
	"fr": "02/01/2006",
	"es": "2/1/2006",
	"ja": "2006/1/2",
	"zh": "2006/1/2",
}

// timestampLayouts are tried in order when a stored value is not a plain date.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}
	return t.In(appLocation)
}

// LocaleLayout returns the date layout for locale, falling back to the language
// part ("en" of "en-NZ") and finally to ISO 8601.
func LocaleLayout(locale string) string {
	if layout, ok := localeLayouts[locale]; ok {
		return layout
	}

	lang, _, _ := strings.Cut(locale, "-")
	if layout, ok := languageLayouts[lang]; ok {
		return layout
	}

	return constant.DateLayout
}

// ParseDate reads a stored date value. Plain dates are calendar dates and are
// never shifted; timestamps are converted to the application timezone.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(constant.DateLayout, value); err == nil {
		return t, true
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return ToAppTime(t), true
		}
	}

	return time.Time{}, false
}

// FormatDate renders a stored date value in the short date format of locale.
// Values that are not dates are returned unchanged.
func FormatDate(value, locale string) string {
	t, ok := ParseDate(value)
	if !ok {
		return value
	}

	return t.Format(LocaleLayout(locale))
}

// DateInputValue returns the YYYY-MM-DD form a date input expects.
func DateInputValue(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return value
	}

	return t.Format(constant.DateLayout)
}
