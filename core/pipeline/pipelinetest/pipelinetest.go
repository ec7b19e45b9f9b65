// Package pipelinetest holds helpers for tests that spawn real processes.
package pipelinetest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/yarp-sh/yarp/core/pipeline"
)

// Scripts is a set of shell scripts keyed by executable name.
type Scripts map[string]string

// WriteScripts writes each script into a fresh directory as an executable
// /bin/sh script and returns the directory.
func WriteScripts(t *testing.T, scripts Scripts) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range scripts {
		contents := "#!/bin/sh\n" + body + "\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// WriteFile writes a plain file with the given mode into dir.
func WriteFile(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not a program\n"), mode); err != nil {
		t.Fatal(err)
	}
	return path
}

// Resolver returns a resolver that searches dirs first, followed by the
// host PATH.
func Resolver(dirs ...string) *pipeline.Resolver {
	path := strings.Join(append(dirs, os.Getenv(pipeline.EnvPath)), string(os.PathListSeparator))

	return &pipeline.Resolver{
		Fs: afero.NewOsFs(),
		Getenv: func(key string) string {
			if key == pipeline.EnvPath {
				return path
			}
			return os.Getenv(key)
		},
	}
}
