package timezone_test

import (
	"hoteladmin/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToAppTime(t *testing.T) {
	in := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, in.Equal(timezone.ToAppTime(in)))
}

func TestLocaleLayout(t *testing.T) {
	tests := []struct {
		locale string
		layout string
	}{
		{locale: "en-US", layout: "1/2/2006"},
		{locale: "de-DE", layout: "2.1.2006"},
		{locale: "en-NZ", layout: "1/2/2006"},
		{locale: "xx-YY", layout: "2006-01-02"},
		{locale: "", layout: "2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.layout, timezone.LocaleLayout(tt.locale))
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		locale string
		want   string
	}{
		{name: "plain date en-US", value: "2024-05-01", locale: "en-US", want: "5/1/2024"},
		{name: "plain date en-GB", value: "2024-05-03", locale: "en-GB", want: "03/05/2024"},
		{name: "plain date de-DE", value: "2024-05-03", locale: "de-DE", want: "3.5.2024"},
		{name: "not a date", value: "next tuesday", locale: "en-US", want: "next tuesday"},
		{name: "empty", value: "", locale: "en-US", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.FormatDate(tt.value, tt.locale))
		})
	}
}

func TestParseDate_Timestamp(t *testing.T) {
	parsed, ok := timezone.ParseDate("2024-05-01T10:00:00Z")

	assert.True(t, ok)
	assert.True(t, parsed.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
}

func TestDateInputValue(t *testing.T) {
	assert.Equal(t, "2024-05-01", timezone.DateInputValue("2024-05-01"))
	assert.Equal(t, "garbage", timezone.DateInputValue("garbage"))
}
