package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/statepane/statepane/color"
	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/key"
	"github.com/statepane/statepane/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a configuration key with its default value and description.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for "config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

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
	case time.Duration:
		return "duration"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Parse converts raw command line values to the type of the field's default.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no value for %s", f.Key)
	}

	raw := values[0]

	switch f.Value.(type) {
	case string:
		return raw, nil
	case int:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw)
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw)
		}
		return parsed, nil
	case time.Duration:
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid duration value: %s", raw)
		}
		// stored as a string so the TOML file stays readable
		return parsed.String(), nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("unsupported type %s for %s", f.typeName(), f.Key)
	}
}

// Default holds every configuration field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SourcesDefault, "demo", "Source to use when --source is not given.\nType \"statepane sources list\" to show available sources")
	register(key.SourcesTarget, "", "Target to load when --target is not given.\nWill prompt if empty")
	register(key.ViewstateToLoadingDelay, time.Second, "How long a load may run before the loading placeholder is shown")
	register(key.ViewstateFromLoadingDelay, time.Second, "How long a visible loading placeholder is kept before it may be hidden")
	register(key.ViewstateAnimate, true, "Fade placeholders in and out")
	register(key.TUIFadeDuration, 200*time.Millisecond, "Duration of placeholder fades")
	register(key.TUIShowHelp, true, "Show key bindings under the content")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIShowURLs, true, "Show URLs under list items")
	register(key.TUISearchPromptString, "> ", "Target prompt string to use")
	register(key.NetworkTimeout, 30*time.Second, "Timeout of requests made by the http source")
	register(key.HistorySave, true, "Remember successfully loaded targets")
	register(key.SearchShowSuggestions, true, "Show target suggestions while typing")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
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
		case time.Duration:
			return style.Fg(color.Cyan)(value.String())
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
