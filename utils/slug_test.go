package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Le Palmier", "le-palmier"},
		{"diacritics", "Café Crème", "cafe-creme"},
		{"symbols collapse", "Chez  Marie & Fils!", "chez-marie-fils"},
		{"leading trailing", "--Tacos--", "tacos"},
		{"digits kept", "Resto 24/7", "resto-24-7"},
		{"already clean", "pizzeria", "pizzeria"},
		{"only symbols", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestRandomSuffix(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := RandomSuffix()
		assert.Len(t, s, 2)
		assert.GreaterOrEqual(t, s[0], byte('0'))
		assert.LessOrEqual(t, s[0], byte('9'))
	}
}
