package console

import "fmt"

// ANSI escape sequence helpers for consistent terminal control.

// ESC is the control sequence introducer every cursor and erase command starts with.
const ESC = "\x1b["

const (
	hideCursorSeq  = ESC + "?25l"
	showCursorSeq  = ESC + "?25h"
	homeSeq        = ESC + "H"
	clearRightSeq  = ESC + "0K"
	clearLeftSeq   = ESC + "1K"
	clearLineSeq   = ESC + "2K"
	clearDownSeq   = ESC + "0J"
	clearUpSeq     = ESC + "1J"
	clearScreenSeq = ESC + "2J"
	nextLineSeq    = ESC + "1E"
	prevLineSeq    = ESC + "1F"
	resetColorSeq  = ESC + "0m"

	// resetSeq is RIS (reset to initial state); it has no CSI prefix.
	resetSeq = "\x1bc"
)

// MoveCursorSeq returns the escape sequence to move the cursor to (x,y)
// Note: ANSI uses row (y) first, then column (x). Both are 1-based.
func MoveCursorSeq(x, y int) string {
	return fmt.Sprintf(ESC+"%d;%dH", y, x)
}

// CursorUpSeq moves the cursor up n rows.
func CursorUpSeq(n int) string { return relativeSeq(n, 'A') }

// CursorDownSeq moves the cursor down n rows.
func CursorDownSeq(n int) string { return relativeSeq(n, 'B') }

// CursorRightSeq moves the cursor right n columns.
func CursorRightSeq(n int) string { return relativeSeq(n, 'C') }

// CursorLeftSeq moves the cursor left n columns.
func CursorLeftSeq(n int) string { return relativeSeq(n, 'D') }

func relativeSeq(n int, dir byte) string {
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf(ESC+"%d%c", n, dir)
}

// HideCursorSeq returns the escape sequence that hides the cursor.
func HideCursorSeq() string { return hideCursorSeq }

// ShowCursorSeq returns the escape sequence that shows the cursor.
func ShowCursorSeq() string { return showCursorSeq }

// HomeSeq moves the cursor to the origin.
func HomeSeq() string { return homeSeq }

// ClearToEndOfLineSeq returns the escape sequence to clear from cursor to end of line.
func ClearToEndOfLineSeq() string { return clearRightSeq }

// ClearToStartOfLineSeq clears from the start of the line to the cursor.
func ClearToStartOfLineSeq() string { return clearLeftSeq }

// ClearLineSeq returns the escape sequence to clear the entire current line.
func ClearLineSeq() string { return clearLineSeq }

// ClearToEndOfScreenSeq clears from the cursor to the end of the screen.
func ClearToEndOfScreenSeq() string { return clearDownSeq }

// ClearToStartOfScreenSeq clears from the start of the screen to the cursor.
func ClearToStartOfScreenSeq() string { return clearUpSeq }

// ClearScreenSeq clears the whole screen without moving the cursor.
func ClearScreenSeq() string { return clearScreenSeq }

// ResetSeq returns the full terminal reset sequence.
func ResetSeq() string { return resetSeq }

// NextLineSeq moves the cursor to the start of the next line.
func NextLineSeq() string { return nextLineSeq }

// PrevLineSeq moves the cursor to the start of the previous line.
func PrevLineSeq() string { return prevLineSeq }

// Color wraps text in a 24-bit foreground color followed by an attribute reset.
// Components are not validated; the terminal decides what to do with values outside 0-255.
func Color(text string, r, g, b int) string {
	return fmt.Sprintf(ESC+"38;2;%d;%d;%dm", r, g, b) + text + resetColorSeq
}
