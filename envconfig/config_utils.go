// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault/Bool: Boolean-Getter mit Default-Wert
// - StringWithDefault: String-Getter mit Default-Wert
// - Uint: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// StringWithDefault gibt eine Funktion zurueck, die einen String mit Default liest
func StringWithDefault(k, defaultValue string) func() string {
	return func() string {
		if s := Var(k); s != "" {
			return s
		}
		return defaultValue
	}
}

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil || n == 0 {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"EASYCLI_PROMPT":        {"EASYCLI_PROMPT", Prompt(), fmt.Sprintf("Prompt shown in front of the input (default %q)", DefaultPrompt)},
		"EASYCLI_MAX_INPUT_LEN": {"EASYCLI_MAX_INPUT_LEN", MaxInputLen(), "Maximum number of characters per line (default 1024)"},
		"EASYCLI_HISTORY_SIZE":  {"EASYCLI_HISTORY_SIZE", HistorySize(), "Number of history entries kept (default 1024)"},
		"EASYCLI_NOHISTORY":     {"EASYCLI_NOHISTORY", NoHistory(), "Do not keep a command history"},
		"EASYCLI_DEBUG":         {"EASYCLI_DEBUG", LogLevel(), "Show additional debug information (1 = debug, 2 = every keystroke)"},
		"EASYCLI_LOG_FILE":      {"EASYCLI_LOG_FILE", LogFile(), "Log file (default ~/.easycli/logs/easycli.log)"},
		"EASYCLI_MASK_CHAR":     {"EASYCLI_MASK_CHAR", string(MaskChar()), "Character shown for hidden input (default *)"},
		"EASYCLI_DEMO_USER":     {"EASYCLI_DEMO_USER", DemoUser(), "User name accepted by the login command"},
		"EASYCLI_DEMO_PASSWORD": {"EASYCLI_DEMO_PASSWORD", "********", "Password accepted by the login command"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
