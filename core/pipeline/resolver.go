package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// EnvPath is the environment variable holding the executable search path.
const EnvPath = "PATH"

// ErrNotFound is the error resulting if a path search failed to find a file.
var ErrNotFound = errors.New("command not found")

// NotFoundError records a command name that could not be resolved.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, ErrNotFound)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Resolver maps executable names to file paths using the PATH variable.
type Resolver struct {
	// Fs is the file-system searched for executables.
	Fs afero.Fs
	// Getenv looks up environment variables, it is consulted on every call.
	Getenv func(string) string
}

// NewResolver creates a Resolver over the host file-system and environment.
func NewResolver() *Resolver {
	return &Resolver{
		Fs:     afero.NewOsFs(),
		Getenv: os.Getenv,
	}
}

func (r *Resolver) isFile(path string) bool {
	info, err := r.Fs.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false
	case err != nil:
		return false
	}
	return !info.IsDir()
}

// Path gets the ordered search path for commands.
func (r *Resolver) Path() []string {
	return filepath.SplitList(r.Getenv(EnvPath))
}

// Resolve searches for a file named name in the directories named by the PATH
// environment variable and returns the absolute path of the first match. If
// name contains a slash, it is tried directly and the PATH is not consulted.
//
// Execute permission is not checked, starting the process reports that.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", &NotFoundError{Name: name}
	}

	if strings.Contains(name, "/") {
		if r.isFile(name) {
			return absolute(name), nil
		}
		return "", &NotFoundError{Name: name}
	}

	for _, dir := range r.Path() {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, name)
		if r.isFile(path) {
			return absolute(path), nil
		}
	}
	return "", &NotFoundError{Name: name}
}

// absolute anchors a path found relative to the working directory.
func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
