package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{"dev", ModeDev, true},
		{"prod", ModeProd, true},
		{"test", ModeTest, true},
		{"", DefaultMode, false},
		{"staging", DefaultMode, false},
		{"DEV", DefaultMode, false},
	}

	for _, tc := range testCases {
		mode, ok := ParseMode(tc.in)
		assert.Equal(t, tc.want, mode, tc.in)
		assert.Equal(t, tc.wantOK, ok, tc.in)
	}
}

func TestChildEnv(t *testing.T) {
	t.Parallel()

	env := ChildEnv(map[string]string{
		"PATH": "/usr/bin",
		"HOME": "/home/dev",
	}, ModeProd)

	assert.Equal(t, []string{
		"HOME=/home/dev",
		"PATH=/usr/bin",
		"PROJECT_RUN_MODE=prod",
	}, env)
}

func TestChildEnvOverridesInheritedMode(t *testing.T) {
	t.Parallel()

	env := ChildEnv(map[string]string{"PROJECT_RUN_MODE": "prod"}, ModeTest)
	assert.Equal(t, []string{"PROJECT_RUN_MODE=test"}, env)
}
