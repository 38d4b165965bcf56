// config_features.go - Eingabe-, Verlaufs- und Demo-Konfiguration
package envconfig

// =============================================================================
// Eingabe und Verlauf
// =============================================================================

var (
	// MaxInputLen ist die maximale Anzahl Zeichen pro Zeile
	// Konfigurierbar via EASYCLI_MAX_INPUT_LEN
	MaxInputLen = Uint("EASYCLI_MAX_INPUT_LEN", 1024)

	// HistorySize ist die Kapazitaet des Verlaufs
	// Konfigurierbar via EASYCLI_HISTORY_SIZE
	HistorySize = Uint("EASYCLI_HISTORY_SIZE", 1024)

	// NoHistory deaktiviert den Verlauf
	NoHistory = Bool("EASYCLI_NOHISTORY")
)

// =============================================================================
// Demo-Login
// =============================================================================

var (
	// DemoUser ist der Benutzername fuer den login-Befehl
	DemoUser = StringWithDefault("EASYCLI_DEMO_USER", "user1")

	// DemoPassword ist das Passwort fuer den login-Befehl
	DemoPassword = StringWithDefault("EASYCLI_DEMO_PASSWORD", "123")
)
