package gocalc

import (
	"bufio"
	"fmt"
	"io"
)

// MsgSize bounds one input line, terminator included. Characters beyond the
// bound are dropped, the line itself is still processed.
const MsgSize = 32

// Repl reads expressions from r one line at a time and writes one result line
// per expression to w: the decimal value, or "invalid input" when any stage of
// the pipeline rejects the line. The literal line "exit" ends the loop before
// the line reaches the tokenizer. Blank lines are skipped. When prompt is
// true a banner and a "> " prompt are emitted for interactive use.
func Repl(r io.Reader, w io.Writer, prompt bool) error {
	if prompt {
		fmt.Fprintln(w, "Hello! I'm a simple calculator.")
		fmt.Fprintln(w, "Give me an expression or type 'exit' to leave:")
	}

	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprint(w, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if len(line) > MsgSize-1 {
			line = line[:MsgSize-1]
		}
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		val, err := EvalString(line)
		if err != nil {
			fmt.Fprintln(w, "invalid input")
			continue
		}
		fmt.Fprintln(w, val)
	}
	if prompt {
		fmt.Fprintln(w, "Quitting...")
	}
	return scanner.Err()
}
