package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Sunrise Medical Center", "sunrise-medical-center"},
		{"  Klinik   Sehat  ", "klinik-sehat"},
		{"St. Mary's Clinic", "st-marys-clinic"},
		{"Clinic 24/7", "clinic-247"},
		{"UPPER case", "upper-case"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, slugify(tt.name), "slugify(%q)", tt.name)
	}
}
