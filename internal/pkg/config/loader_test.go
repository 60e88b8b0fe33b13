package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textanalyzer/internal/pkg/config"
)

func TestLoadEnvString(t *testing.T) {
	t.Run("unset returns default", func(t *testing.T) {
		assert.Equal(t, "fallback", config.LoadEnvString("TA_TEST_UNSET", "fallback"))
	})

	t.Run("set returns value", func(t *testing.T) {
		t.Setenv("TA_TEST_STRING", "custom")
		assert.Equal(t, "custom", config.LoadEnvString("TA_TEST_STRING", "fallback"))
	})
}

func TestLoadEnvInt(t *testing.T) {
	t.Run("unset returns default without warning", func(t *testing.T) {
		result := config.LoadEnvInt("TA_TEST_UNSET_INT", 10, nil)

		assert.Equal(t, 10, result.Value)
		assert.False(t, result.FallbackApplied)
		assert.Empty(t, result.Warnings)
	})

	t.Run("valid value passes through", func(t *testing.T) {
		t.Setenv("TA_TEST_INT", "25")
		result := config.LoadEnvInt("TA_TEST_INT", 10, config.ValidatePositiveInt)

		assert.Equal(t, 25, result.Value)
		assert.False(t, result.FallbackApplied)
	})

	t.Run("non-integer falls back with warning", func(t *testing.T) {
		t.Setenv("TA_TEST_INT", "many")
		result := config.LoadEnvInt("TA_TEST_INT", 10, nil)

		assert.Equal(t, 10, result.Value)
		assert.True(t, result.FallbackApplied)
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("validation failure falls back with warning", func(t *testing.T) {
		t.Setenv("TA_TEST_INT", "-3")
		result := config.LoadEnvInt("TA_TEST_INT", 10, config.ValidatePositiveInt)

		assert.Equal(t, 10, result.Value)
		assert.True(t, result.FallbackApplied)
		assert.Len(t, result.Warnings, 1)
	})
}

func TestLoadEnvWithFallback(t *testing.T) {
	failing := func(string) error { return assert.AnError }

	t.Run("unset returns default", func(t *testing.T) {
		result := config.LoadEnvWithFallback("TA_TEST_UNSET_STR", "default", failing)

		assert.Equal(t, "default", result.Value)
		assert.False(t, result.FallbackApplied)
	})

	t.Run("invalid value falls back", func(t *testing.T) {
		t.Setenv("TA_TEST_STR", "bad")
		result := config.LoadEnvWithFallback("TA_TEST_STR", "default", failing)

		assert.Equal(t, "default", result.Value)
		assert.True(t, result.FallbackApplied)
	})

	t.Run("nil validator accepts anything", func(t *testing.T) {
		t.Setenv("TA_TEST_STR", "anything")
		result := config.LoadEnvWithFallback("TA_TEST_STR", "default", nil)

		assert.Equal(t, "anything", result.Value)
	})
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, config.ValidateIntRange(5, 1, 10))
	assert.NoError(t, config.ValidateIntRange(1, 1, 10))
	assert.NoError(t, config.ValidateIntRange(10, 1, 10))
	assert.Error(t, config.ValidateIntRange(0, 1, 10))
	assert.Error(t, config.ValidateIntRange(11, 1, 10))

	validator := config.IntRangeValidator(1, 10)
	assert.NoError(t, validator(5))
	assert.Error(t, validator(0))
}
