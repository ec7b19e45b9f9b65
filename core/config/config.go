package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/preferences.yml
	defaultConfigData []byte
)

const (
	ConfigurationName = "preferences.yml"
	LogsDirName       = "logs"
	EventLogName      = "events.jsonl"
	AppDirName        = "yarp"

	// RunLogTimeFormat is the timestamp layout used in run log names.
	RunLogTimeFormat = "2006-01-02_15_04_05"
	runLogPrefix     = "yarp-"
	runLogExt        = ".log"
)

type Configuration struct {
	configFs afero.Fs
	dir      string

	Logs     LogConfig     `json:"logs_configurations"`
	Terminal TermConfig    `json:"terminal_config"`
	Scripts  ScriptsConfig `json:"scripts_config"`
}

type LogConfig struct {
	WriteToFile   bool `json:"write_to_file"`
	WriteToStdout bool `json:"write_to_stdout"`
}

type TermConfig struct {
	Prompt       string            `json:"prompt" validate:"required"`
	Alias        map[string]string `json:"alias" validate:"dive,keys,required,alias_name,endkeys"`
	HistoryFile  string            `json:"history_file"`
	HistoryLimit int               `json:"history_limit" validate:"gte=0"`
}

type ScriptsConfig struct {
	Files []string `json:"files" validate:"dive,required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	validate.RegisterValidation("alias_name", func(fl validator.FieldLevel) bool {
		return ValidAliasName(fl.Field().String())
	})

	return validate.Struct(c)
}

// ValidAliasName reports whether name can be typed as a single command word.
func ValidAliasName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\n;|=")
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// Dir returns the directory the configuration was loaded from.
func (c *Configuration) Dir() string {
	return c.dir
}

// Path resolves a path from the configuration relative to its directory.
func (c *Configuration) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.dir, name)
}

// HistoryPath returns the path of the line history, empty if disabled.
func (c *Configuration) HistoryPath() string {
	return c.Path(c.Terminal.HistoryFile)
}

// ScriptPaths returns the start-up scripts in the order they run.
func (c *Configuration) ScriptPaths() []string {
	var out []string
	for _, f := range c.Scripts.Files {
		out = append(out, c.Path(f))
	}
	return out
}

// Save writes the configuration back to its file after validating it.
func (c *Configuration) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return afero.WriteFile(c.fs(), ConfigurationName, out, 0600)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(EventLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(EventLogName, os.O_RDONLY, 0600)
}

// CreateRunLog creates the application log for a run started at the given
// time.
func (c *Configuration) CreateRunLog(started time.Time) (afero.File, error) {
	if err := c.fs().MkdirAll(LogsDirName, 0700); err != nil {
		return nil, err
	}

	name := runLogPrefix + started.Format(RunLogTimeFormat) + runLogExt
	return c.fs().OpenFile(filepath.Join(LogsDirName, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// RunLog describes an application log of a previous run.
type RunLog struct {
	Name    string
	ModTime time.Time
	Size    int64
}

// RunLogs lists the application logs, most recently modified first.
func (c *Configuration) RunLogs() ([]RunLog, error) {
	infos, err := afero.ReadDir(c.fs(), LogsDirName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []RunLog
	for _, info := range infos {
		if info.IsDir() || filepath.Ext(info.Name()) != runLogExt {
			continue
		}
		out = append(out, RunLog{
			Name:    info.Name(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ModTime.Equal(out[j].ModTime) {
			return out[i].Name > out[j].Name
		}
		return out[i].ModTime.After(out[j].ModTime)
	})
	return out, nil
}

// ReadRunLog opens a log returned by RunLogs.
func (c *Configuration) ReadRunLog(name string) (afero.File, error) {
	return c.fs().Open(filepath.Join(LogsDirName, filepath.Base(name)))
}

// SetAlias adds or replaces an alias, an empty value removes it.
func (c *Configuration) SetAlias(name, value string) {
	if value == "" {
		delete(c.Terminal.Alias, name)
		return
	}
	if c.Terminal.Alias == nil {
		c.Terminal.Alias = make(map[string]string)
	}
	c.Terminal.Alias[name] = value
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
