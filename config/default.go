package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/muesli/reflow/wordwrap"
	"github.com/pikbatch/pikbatch/color"
	"github.com/pikbatch/pikbatch/constant"
	"github.com/pikbatch/pikbatch/key"
	"github.com/pikbatch/pikbatch/style"
	"github.com/pikbatch/pikbatch/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DriveEndpoint, constant.DriveFilesEndpoint, "Offline download endpoint of the drive API")
	register(key.DriveParentID, "", "Folder ID that receives the downloads.\nEmpty means the drive root")
	register(key.SubmitDelay, 1000, "Pause after every submission, in milliseconds.\nApplied after the last task too")
	register(key.TasksFile, "", "Task list read by \"pikbatch run\" when no file is given.\nEmpty means tasks.txt in the config directory")
	register(key.FailedWrite, true, "Write failed tasks to a file that can be fed back to \"pikbatch run\"")
	register(key.NetworkTimeout, 60, "HTTP transport timeout, in seconds")
	register(key.NetworkProxy, "", "Proxy URL for drive requests.\nSupported schemes: http, https, socks5")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent header sent to the drive API")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain, kaomoji, squares")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Check for a newer release after printing help and version")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"cyan":   style.Fg(color.Cyan),
	"wrap": func(s string) string {
		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			return s
		}
		return wordwrap.String(s, width)
	},
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint (wrap .Description) }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
