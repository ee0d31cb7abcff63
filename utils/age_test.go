package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAge(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	// Birthday already passed this year.
	assert.Equal(t, 34, CalculateAge("1990-01-01", ref))
	// Birthday is today.
	assert.Equal(t, 34, CalculateAge("1990-06-15", ref))
	// Birthday still ahead.
	assert.Equal(t, 33, CalculateAge("1990-06-16", ref))
	assert.Equal(t, 33, CalculateAge("1990-12-31", ref))
}

func TestCalculateAgeAlternateLayouts(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 34, CalculateAge("02/01/1990", ref))
	assert.Equal(t, 34, CalculateAge("02-01-1990", ref))
}

func TestCalculateAgeDefaults(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, DefaultAge, CalculateAge("", ref))
	assert.Equal(t, DefaultAge, CalculateAge("not-a-date", ref))
	assert.Equal(t, DefaultAge, CalculateAge("31/02/1990", ref))
}

func TestCalculateAgeFutureDOB(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CalculateAge("2030-01-01", ref))
}
