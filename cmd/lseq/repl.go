package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/lseq/pkg/lseq"
)

func printBanner() {
	fmt.Println("lseq REPL (Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seq FIRST ?to LAST? ?by STEP? ?count N?   build a series")
	fmt.Println("  set NAME = ...   copy A B   drop NAME   vars")
	fmt.Println("  len L   index L I   step L   slice L FROM TO   reverse L")
	fmt.Println("  elements L   print L   history ?N?")
	fmt.Println()
}

func runREPL(runtime *lseq.Runtime) {
	printBanner()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		runBasicREPL(runtime)
		return
	}

	runRawREPL(runtime)
}

// runBasicREPL handles non-TTY input (piped input)
func runBasicREPL(runtime *lseq.Runtime) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(">>> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := runtime.Eval(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		if result != "" {
			fmt.Println(result)
		}
	}
}

// replSession holds line-recall state for the raw-mode REPL. Recall is
// seeded from the persisted session history, so a restarted REPL can
// walk back into earlier sessions.
type replSession struct {
	history []string // oldest first
}

// runRawREPL handles TTY input with line editing and history recall
func runRawREPL(runtime *lseq.Runtime) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		runBasicREPL(runtime)
		return
	}
	defer term.Restore(fd, oldState)

	sess := &replSession{}
	if lines, err := runtime.History(0); err == nil {
		for i := len(lines) - 1; i >= 0; i-- {
			sess.history = append(sess.history, lines[i])
		}
	}

	for {
		fmt.Print(">>> ")

		line, eof := sess.readLine()
		if eof {
			fmt.Print("\r\n")
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		sess.remember(line)

		result, err := runtime.Eval(line)
		if err != nil {
			fmt.Printf("Error: %v\r\n", err)
			continue
		}

		if result != "" {
			// Replace newlines with \r\n for raw mode display
			result = strings.ReplaceAll(result, "\n", "\r\n")
			fmt.Print(result + "\r\n")
		}
	}
}

func (s *replSession) remember(line string) {
	if n := len(s.history); n > 0 && s.history[n-1] == line {
		return
	}
	s.history = append(s.history, line)
}

// readLine reads a line in raw mode with cursor editing and Up/Down
// history recall. Returns the line and whether EOF was encountered.
func (s *replSession) readLine() (string, bool) {
	var line []rune
	cursor := 0
	buf := make([]byte, 1)

	// One past the newest entry; Up walks backward from here.
	histIdx := len(s.history)
	var pending []rune // line being typed before recall started

	redrawFromCursor := func() {
		fmt.Print("\x1b[K")
		for i := cursor; i < len(line); i++ {
			fmt.Print(string(line[i]))
		}
		if cursor < len(line) {
			fmt.Printf("\x1b[%dD", len(line)-cursor)
		}
	}

	replaceLine := func(text string) {
		if cursor > 0 {
			fmt.Printf("\x1b[%dD", cursor)
		}
		fmt.Print("\x1b[K")
		line = []rune(text)
		cursor = len(line)
		fmt.Print(text)
	}

	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return string(line), true
		}

		b := buf[0]

		switch b {
		case 0x04: // Ctrl+D
			if len(line) == 0 {
				return "", true
			}
			if cursor < len(line) {
				line = append(line[:cursor], line[cursor+1:]...)
				redrawFromCursor()
			}

		case 0x03: // Ctrl+C
			fmt.Print("^C\r\n")
			return "", false

		case 0x0d, 0x0a: // Enter (CR or LF)
			fmt.Print("\r\n")
			return string(line), false

		case 0x7f, 0x08: // Backspace (DEL or BS)
			if cursor > 0 {
				cursor--
				line = append(line[:cursor], line[cursor+1:]...)
				fmt.Print("\b")
				redrawFromCursor()
			}

		case 0x1b: // ESC - arrow key sequence
			nextBuf := make([]byte, 1)
			n, err := os.Stdin.Read(nextBuf)
			if err != nil || n == 0 || nextBuf[0] != '[' {
				continue
			}
			arrowBuf := make([]byte, 1)
			n, err = os.Stdin.Read(arrowBuf)
			if err != nil || n == 0 {
				continue
			}

			switch arrowBuf[0] {
			case 'A': // Up - recall older history
				if histIdx > 0 {
					if histIdx == len(s.history) {
						pending = line
					}
					histIdx--
					replaceLine(s.history[histIdx])
				}
			case 'B': // Down - recall newer history
				if histIdx < len(s.history) {
					histIdx++
					if histIdx == len(s.history) {
						replaceLine(string(pending))
					} else {
						replaceLine(s.history[histIdx])
					}
				}
			case 'C': // Right
				if cursor < len(line) {
					cursor++
					fmt.Print("\x1b[C")
				}
			case 'D': // Left
				if cursor > 0 {
					cursor--
					fmt.Print("\x1b[D")
				}
			case '3': // Delete key: ESC [ 3 ~
				delBuf := make([]byte, 1)
				os.Stdin.Read(delBuf)
				if delBuf[0] == '~' && cursor < len(line) {
					line = append(line[:cursor], line[cursor+1:]...)
					redrawFromCursor()
				}
			}

		case 0x01: // Ctrl+A - beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				cursor = 0
			}

		case 0x05: // Ctrl+E - end of line
			if cursor < len(line) {
				fmt.Printf("\x1b[%dC", len(line)-cursor)
				cursor = len(line)
			}

		case 0x0b: // Ctrl+K - kill to end of line
			if cursor < len(line) {
				line = line[:cursor]
				fmt.Print("\x1b[K")
			}

		case 0x15: // Ctrl+U - kill to beginning of line
			if cursor > 0 {
				fmt.Printf("\x1b[%dD", cursor)
				line = line[cursor:]
				cursor = 0
				redrawFromCursor()
			}

		default:
			if b >= 0x20 && b < 0x7f {
				r := rune(b)
				newLine := make([]rune, 0, len(line)+1)
				newLine = append(newLine, line[:cursor]...)
				newLine = append(newLine, r)
				newLine = append(newLine, line[cursor:]...)
				line = newLine
				cursor++
				fmt.Print(string(r))
				if cursor < len(line) {
					redrawFromCursor()
				}
			}
		}
	}
}
