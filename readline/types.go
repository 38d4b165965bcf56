// Types-Modul: Tastencodes und ANSI-Sequenzen
// Alle Konstanten, die der Dispatcher liest und der Renderer schreibt.

package readline

import "fmt"

// Steuerzeichen, wie sie im Raw-Mode ankommen
const (
	CharLineStart = 1
	CharBackward  = 2
	CharInterrupt = 3
	CharDelete    = 4
	CharLineEnd   = 5
	CharForward   = 6
	CharCtrlH     = 8
	CharCtrlJ     = 10
	CharKill      = 11
	CharCtrlL     = 12
	CharEnter     = 13
	CharNext      = 14
	CharPrev      = 16
	CharTranspose = 20
	CharCtrlU     = 21
	CharCtrlW     = 23
	CharEsc       = 27
	CharSpace     = 32
	CharEscapeEx  = 91
	CharSS3       = 79
	CharTilde     = 126
	CharBackspace = 127
)

// Finale Bytes der Escape-Sequenzen nach ESC [
const (
	KeyDel    = 51
	KeyUp     = 65
	KeyDown   = 66
	KeyRight  = 67
	KeyLeft   = 68
	MetaEnd   = 70
	MetaStart = 72
)

const (
	Esc = "\x1b"

	CursorUp    = Esc + "[1A"
	CursorBOL   = "\r"
	CursorReset = Esc + "[H"

	ClearLine   = Esc + "[2K"
	ClearScreen = Esc + "[2J"

	ColorRed     = Esc + "[31m"
	ColorDefault = Esc + "[0m"
)

func CursorUpN(n int) string {
	return fmt.Sprintf(Esc+"[%dA", n)
}

func CursorDownN(n int) string {
	return fmt.Sprintf(Esc+"[%dB", n)
}

func CursorRightN(n int) string {
	return fmt.Sprintf(Esc+"[%dC", n)
}
