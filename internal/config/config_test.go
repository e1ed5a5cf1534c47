package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a:9092"}, CSV("a:9092"))
	assert.Equal(t, []string{"a:9092", "b:9092"}, CSV(" a:9092 , b:9092 ,"))
}

func TestEnvDefault(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")

	assert.Equal(t, "value", EnvDefault("SOME_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", EnvDefault("SOME_UNSET_TEST_KEY", "fallback"))
}
