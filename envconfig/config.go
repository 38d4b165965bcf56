// config.go - Haupt-Konfigurationsfunktionen fuer easycli
//
// Dieses Modul enthaelt:
// - Prompt: Prompt-String (EASYCLI_PROMPT)
// - LogLevel: Log-Level (EASYCLI_DEBUG)
// - LogFile: Pfad der Log-Datei (EASYCLI_LOG_FILE)
// - MaskChar: Maskenzeichen fuer verdeckte Fragen (EASYCLI_MASK_CHAR)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Eingabe-, Verlaufs- und Demo-Variablen
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPrompt ist der Prompt, wenn EASYCLI_PROMPT nicht gesetzt ist
const DefaultPrompt = "easycli > "

// Prompt gibt den Prompt zurueck
// Konfigurierbar via EASYCLI_PROMPT, ein leerer Wert ist erlaubt.
// Leerzeichen bleiben erhalten, nur umschliessende Quotes werden entfernt.
func Prompt() string {
	if s, ok := os.LookupEnv("EASYCLI_PROMPT"); ok {
		return strings.Trim(s, "\"'")
	}
	return DefaultPrompt
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via EASYCLI_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("EASYCLI_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// LogFile gibt den Pfad der Log-Datei zurueck
// Konfigurierbar via EASYCLI_LOG_FILE
// Default: $HOME/.easycli/logs/easycli.log
func LogFile() string {
	if s := Var("EASYCLI_LOG_FILE"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "easycli.log")
	}

	return filepath.Join(home, ".easycli", "logs", "easycli.log")
}

// MaskChar gibt das Maskenzeichen fuer verdeckte Eingaben zurueck
// Konfigurierbar via EASYCLI_MASK_CHAR, nur das erste druckbare ASCII-Zeichen zaehlt.
// Default: '*'
func MaskChar() byte {
	if s := Var("EASYCLI_MASK_CHAR"); s != "" && s[0] >= ' ' && s[0] < 127 {
		return s[0]
	}
	return '*'
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
