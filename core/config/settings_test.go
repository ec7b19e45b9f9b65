package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_Get(t *testing.T) {
	cfg := defaultConfig()

	cases := []struct {
		section  string
		field    string
		expected string
	}{
		{"terminal_config", "prompt", "'{} >> '"},
		{"terminal_config", "history_limit", "500"},
		{"terminal_config", "alias", "{}"},
		{"logs_configurations", "write_to_file", "true"},
		{"scripts_config", "files", "[]"},
	}

	for _, tc := range cases {
		t.Run(tc.section+"."+tc.field, func(t *testing.T) {
			actual, err := cfg.Get(tc.section, tc.field)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	_, err := cfg.Get("nope", "prompt")
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = cfg.Get("terminal_config", "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestConfiguration_Set(t *testing.T) {
	cfg := defaultConfig()

	require.NoError(t, cfg.Set("terminal_config", "prompt", "{} $ "))
	assert.Equal(t, "{} $ ", cfg.Terminal.Prompt)

	require.NoError(t, cfg.Set("terminal_config", "history_limit", "20"))
	assert.Equal(t, 20, cfg.Terminal.HistoryLimit)

	require.NoError(t, cfg.Set("logs_configurations", "write_to_stdout", "yes"))
	assert.True(t, cfg.Logs.WriteToStdout)

	require.NoError(t, cfg.Set("terminal_config", "alias", "{ll: ls -a, la: ls -a}"))
	assert.Equal(t, map[string]string{"ll": "ls -a", "la": "ls -a"}, cfg.Terminal.Alias)

	require.NoError(t, cfg.Set("scripts_config", "files", "[a.yarp, b.yarp]"))
	assert.Equal(t, []string{"a.yarp", "b.yarp"}, cfg.Scripts.Files)
}

func TestConfiguration_SetRejected(t *testing.T) {
	cases := map[string]struct {
		section string
		field   string
		value   string
		err     error
	}{
		"unknown-section": {section: "colors", field: "prompt", value: "x", err: ErrUnknownSection},
		"unknown-field":   {section: "terminal_config", field: "colour", value: "x", err: ErrUnknownField},
		"wrong-type":      {section: "terminal_config", field: "history_limit", value: "lots"},
		"invalid":         {section: "terminal_config", field: "history_limit", value: "-5"},
		"required":        {section: "terminal_config", field: "prompt", value: ""},
		"bad-yaml":        {section: "scripts_config", field: "files", value: "[unclosed"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()

			err := cfg.Set(tc.section, tc.field, tc.value)

			assert.Error(t, err)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
			assert.Equal(t, defaultConfig(), cfg, "rejected change must not be applied")
		})
	}
}

func TestConfiguration_List(t *testing.T) {
	settings, err := defaultConfig().List()
	require.NoError(t, err)

	var rendered []string
	for _, s := range settings {
		rendered = append(rendered, s.String())
	}

	assert.Equal(t, []string{
		"logs_configurations.write_to_file: true",
		"logs_configurations.write_to_stdout: false",
		"scripts_config.files: []",
		"terminal_config.alias: {}",
		"terminal_config.history_file: history",
		"terminal_config.history_limit: 500",
		"terminal_config.prompt: '{} >> '",
	}, rendered)
}
