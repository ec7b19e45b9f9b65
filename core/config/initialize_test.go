package config

import (
	"bytes"
	"io"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func newMemConfig(t *testing.T) (*Configuration, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	cfg, err := InitializeFs(fs, "/home/user/.config/yarp", log.New(ioutil.Discard, "", 0))
	require.NoError(t, err)
	return cfg, fs
}

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	var out bytes.Buffer
	if _, err := Initialize(tempDir, log.New(&out, "", 0)); err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, out.String(), "Writing default preferences")

	// Check that the config is valid
	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, tempDir, cfg.Dir())

	// Loading from the file path works too.
	_, err = Load(filepath.Join(tempDir, ConfigurationName))
	assert.NoError(t, err)

	// Initializing again keeps the existing file.
	require.NoError(t, cfg.Set("terminal_config", "prompt", "$ "))
	require.NoError(t, cfg.Save())
	out.Reset()
	again, err := Initialize(tempDir, log.New(&out, "", 0))
	require.NoError(t, err)
	assert.Equal(t, "$ ", again.Terminal.Prompt)
	assert.Contains(t, out.String(), "Keeping existing preferences")

	t.Run("OpenEventLog", func(t *testing.T) {
		fd, err := cfg.OpenEventLog()
		assert.Nil(t, err)
		fd.Close()

		fd, err = cfg.ReadEventLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("CreateRunLog", func(t *testing.T) {
		fd, err := cfg.CreateRunLog(time.Now())
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("HistoryPath", func(t *testing.T) {
		assert.Equal(t, filepath.Join(tempDir, "history"), cfg.HistoryPath())
	})
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())

	assert.Error(t, err)
}

func TestLoadFs_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown-field": "logs_configurations: {write_to_file: true, write_to_stdout: false, colour: red}\n",
		"bad-type":      "terminal_config: {prompt: '>', history_limit: many}\n",
		"invalid":       "terminal_config: {prompt: ''}\n",
	}

	for tn, contents := range cases {
		t.Run(tn, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, ConfigurationName, []byte(contents), 0600))

			_, err := LoadFs(fs, "/")
			assert.Error(t, err)
		})
	}
}

func TestConfiguration_Save(t *testing.T) {
	cfg, fs := newMemConfig(t)
	cfg.SetAlias("ll", "ls -a")
	cfg.Scripts.Files = []string{"startup.yarp", "/etc/yarp/global.yarp"}

	require.NoError(t, cfg.Save())

	raw, err := afero.ReadFile(fs, ConfigurationName)
	require.NoError(t, err)

	var parsed struct {
		Terminal struct {
			Alias map[string]string `yaml:"alias"`
		} `yaml:"terminal_config"`
		Scripts struct {
			Files []string `yaml:"files"`
		} `yaml:"scripts_config"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &parsed))
	assert.Equal(t, map[string]string{"ll": "ls -a"}, parsed.Terminal.Alias)

	reloaded, err := LoadFs(fs, cfg.Dir())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/home/user/.config/yarp/startup.yarp",
		"/etc/yarp/global.yarp",
	}, reloaded.ScriptPaths())

	// Invalid configurations aren't written.
	reloaded.Terminal.Prompt = ""
	assert.Error(t, reloaded.Save())
	again, err := LoadFs(fs, cfg.Dir())
	require.NoError(t, err)
	assert.Equal(t, "{} >> ", again.Terminal.Prompt)
}

func TestConfiguration_SetAlias(t *testing.T) {
	cfg, _ := newMemConfig(t)
	cfg.Terminal.Alias = nil

	cfg.SetAlias("ll", "ls -a")
	assert.Equal(t, "ls -a", cfg.Terminal.Alias["ll"])

	cfg.SetAlias("ll", "")
	assert.NotContains(t, cfg.Terminal.Alias, "ll")
}

func TestConfiguration_RunLogs(t *testing.T) {
	cfg, fs := newMemConfig(t)

	logs, err := cfg.RunLogs()
	require.NoError(t, err)
	assert.Empty(t, logs)

	base := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, started := range []time.Time{base, base.Add(2 * time.Hour), base.Add(time.Hour)} {
		fd, err := cfg.CreateRunLog(started)
		require.NoError(t, err)
		_, err = io.WriteString(fd, strings.Repeat("x", i+1))
		require.NoError(t, err)
		require.NoError(t, fd.Close())
		name := filepath.Join(LogsDirName, "yarp-"+started.Format(RunLogTimeFormat)+".log")
		require.NoError(t, fs.Chtimes(name, started, started))
	}
	require.NoError(t, afero.WriteFile(fs, filepath.Join(LogsDirName, "notes.txt"), nil, 0600))

	logs, err = cfg.RunLogs()
	require.NoError(t, err)

	var names []string
	for _, l := range logs {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{
		"yarp-2023-05-01_12_00_00.log",
		"yarp-2023-05-01_11_00_00.log",
		"yarp-2023-05-01_10_00_00.log",
	}, names)

	fd, err := cfg.ReadRunLog(names[0])
	require.NoError(t, err)
	defer fd.Close()
	contents, err := io.ReadAll(fd)
	require.NoError(t, err)
	assert.Equal(t, "xx", string(contents))
}
