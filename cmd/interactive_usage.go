// interactive_usage.go - Hilfe-Texte fuer die interaktive Eingabe
package cmd

import (
	"fmt"
	"io"
)

// usage zeigt die allgemeine Hilfe an
func usage(w io.Writer) {
	fmt.Fprintln(w, "Available Commands:")
	fmt.Fprintln(w, "  login           Log in with user name and password")
	fmt.Fprintln(w, "  logout          Forget the logged in user")
	fmt.Fprintln(w, "  whoami          Show the logged in user")
	fmt.Fprintln(w, "  echo <text>     Print text")
	fmt.Fprintln(w, "  history         Show the command history")
	fmt.Fprintln(w, "  set ...         Set session variables")
	fmt.Fprintln(w, "  clear           Clear the screen")
	fmt.Fprintln(w, "  exit, bye       Exit")
	fmt.Fprintln(w, "  ?, help         Help")
	fmt.Fprintln(w, "")
	usageShortcuts(w)
}

// usageSet zeigt die Hilfe fuer set-Befehle an
func usageSet(w io.Writer) {
	fmt.Fprintln(w, "Available Commands:")
	fmt.Fprintln(w, "  set history     Enable history")
	fmt.Fprintln(w, "  set nohistory   Disable history")
	fmt.Fprintln(w, "")
}

// usageShortcuts zeigt die Tastenkuerzel an
func usageShortcuts(w io.Writer) {
	fmt.Fprintln(w, "Available keyboard shortcuts:")
	fmt.Fprintln(w, "  Ctrl + a            Move to the beginning of the line (Home)")
	fmt.Fprintln(w, "  Ctrl + e            Move to the end of the line (End)")
	fmt.Fprintln(w, "  Ctrl + b / Left     Move back one character")
	fmt.Fprintln(w, "  Ctrl + f / Right    Move forward one character")
	fmt.Fprintln(w, "  Ctrl + p / Up       Previous history entry")
	fmt.Fprintln(w, "  Ctrl + n / Down     Next history entry")
	fmt.Fprintln(w, "  Ctrl + k            Delete the sentence after the cursor")
	fmt.Fprintln(w, "  Ctrl + u            Delete the sentence before the cursor")
	fmt.Fprintln(w, "  Ctrl + d / Del      Delete the character under the cursor")
	fmt.Fprintln(w, "  Ctrl + l            Clear the screen")
	fmt.Fprintln(w, "  Ctrl + c            Exit")
	fmt.Fprintln(w, "  Ctrl + d            Exit (on an empty line)")
	fmt.Fprintln(w, "")
}
