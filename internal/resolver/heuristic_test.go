package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlausibleArabicProse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"arabic", "الحمد لله رب العالمين", true},
		{"arabic with reference", "انظر تفسير الآية 255 من سورة البقرة (ص 42)", true},
		{"arabic with short latin", "قال ابن كثير: وهو قول ibn Abbas", true},
		{"english", "The quick brown fox jumps", false},
		{"arabic mixed with english prose", "الحمد لله The quick brown fox", false},
		{"empty", "", false},
		{"digits only", "12345", false},
		{"html error page", "<html><body>Service Unavailable</body></html>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlausibleArabicProse(tt.text))
		})
	}
}

func TestOfflinePlaceholderIsPlausible(t *testing.T) {
	assert.True(t, IsPlausibleArabicProse(OfflinePlaceholder))
}
