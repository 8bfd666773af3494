package string

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"LogLevel":      "log_level",
		"FixedTime":     "fixed_time",
		"MetricsFile":   "metrics_file",
		"HTTPAddr":      "http_addr",
		"already_snake": "already_snake",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestTrimStrings(t *testing.T) {
	a, b := "  alice ", "\tweb\n"
	TrimStrings(&a, &b)
	assert.Equal(t, "alice", a)
	assert.Equal(t, "web", b)
}

func TestDedupeAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, DedupeAndTrim([]string{" a.yaml", "b.yaml", "a.yaml", "", "  "}))
	assert.Empty(t, DedupeAndTrim(nil))
}
