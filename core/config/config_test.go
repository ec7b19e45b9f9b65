package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		section, ok := rawConfig[jsonField]
		if !ok {
			assert.False(t, true, "default config missing section: %q", jsonField)
			continue
		}

		// Every field of the section must be spelled out in the default.
		rawSection, ok := section.(map[interface{}]interface{})
		if !assert.True(t, ok, "section %q is not a mapping", jsonField) {
			continue
		}
		for j := 0; j < field.Type.NumField(); j++ {
			name := strings.Split(field.Type.Field(j).Tag.Get("json"), ",")[0]
			_, ok := rawSection[name]
			assert.True(t, ok, "default config missing field: %q.%q", jsonField, name)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid section: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := defaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "{} >> ", cfg.Terminal.Prompt)
	assert.True(t, cfg.Logs.WriteToFile)
	assert.False(t, cfg.Logs.WriteToStdout)
	assert.Equal(t, 500, cfg.Terminal.HistoryLimit)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate func(*Configuration)
		field  string
	}{
		"empty-prompt": {
			mutate: func(c *Configuration) { c.Terminal.Prompt = "" },
			field:  "prompt",
		},
		"negative-history": {
			mutate: func(c *Configuration) { c.Terminal.HistoryLimit = -1 },
			field:  "history_limit",
		},
		"empty-script": {
			mutate: func(c *Configuration) { c.Scripts.Files = []string{"ok.sh", ""} },
			field:  "files[1]",
		},
		"alias-with-space": {
			mutate: func(c *Configuration) { c.Terminal.Alias = map[string]string{"l l": "ls"} },
			field:  "alias[l l]",
		},
		"alias-with-pipe": {
			mutate: func(c *Configuration) { c.Terminal.Alias = map[string]string{"a|b": "ls"} },
			field:  "alias[a|b]",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.field)
			}
		})
	}
}

func TestValidAliasName(t *testing.T) {
	assert.True(t, ValidAliasName("ll"))
	assert.True(t, ValidAliasName("git-st"))
	assert.False(t, ValidAliasName(""))
	assert.False(t, ValidAliasName("a b"))
	assert.False(t, ValidAliasName("a;b"))
	assert.False(t, ValidAliasName("a=b"))
}
