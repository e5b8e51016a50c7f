package openmeteo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondition(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear"},
		{1, "Partly Cloudy"},
		{2, "Partly Cloudy"},
		{3, "Partly Cloudy"},
		{45, "Foggy"},
		{48, "Foggy"},
		{51, "Drizzle"},
		{57, "Drizzle"},
		{61, "Rain"},
		{67, "Rain"},
		{71, "Snow"},
		{77, "Snow"},
		{80, "Showers"},
		{82, "Showers"},
		{85, "Snow Showers"},
		{86, "Snow Showers"},
		{95, "Thunderstorm"},
		{99, "Thunderstorm"},
		{100, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Condition(tt.code), "code %d", tt.code)
	}
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Clear sky", Description(0))
	assert.Equal(t, "Partly cloudy", Description(2))
	assert.Equal(t, "Overcast", Description(3))
	assert.Equal(t, "Depositing rime fog", Description(48))
	assert.Equal(t, "Slight rain", Description(61))
	assert.Equal(t, "Snow grains", Description(77))
	assert.Equal(t, "Thunderstorm", Description(95))
	assert.Equal(t, "Thunderstorm with heavy hail", Description(99))
	assert.Equal(t, "Unknown weather condition", Description(4))
}

func TestIcon(t *testing.T) {
	tests := []struct {
		code  int
		isDay bool
		want  string
	}{
		{0, true, "01d"},
		{0, false, "01n"},
		{1, true, "02d"},
		{1, false, "02n"},
		{2, true, "02d"},
		{2, false, "02n"},
		{3, false, "04d"},
		{45, true, "50d"},
		{55, true, "09d"},
		{63, false, "10d"},
		{75, true, "13d"},
		{81, true, "09d"},
		{86, true, "13d"},
		{96, false, "11d"},
		{42, true, "01d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Icon(tt.code, tt.isDay), "code %d day %v", tt.code, tt.isDay)
	}
}

func TestKnownCodesResolveFully(t *testing.T) {
	for code := range descriptions {
		assert.NotEqual(t, "Unknown", Condition(code), "code %d", code)
		assert.NotEmpty(t, Description(code))
		icon := Icon(code, true)
		assert.Len(t, icon, 3)
		assert.Contains(t, "dn", icon[2:])
	}
}
