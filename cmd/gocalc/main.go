package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	astFlag  = kingpin.Flag("ast", "Print the parse tree instead of evaluating.").Bool()
	exprArgs = kingpin.Arg("expression", "Expression to evaluate.").Strings()
)

func run(line string) error {
	tokens, err := gocalc.Tokenize(line)
	if err != nil {
		return err
	}
	expr, err := gocalc.Parse(tokens)
	if err != nil {
		return err
	}
	if *astFlag {
		repr.Println(expr)
		return nil
	}
	val, err := gocalc.Eval(expr)
	if err != nil {
		return err
	}
	fmt.Println(val)
	return nil
}

func main() {
	kingpin.Parse()

	if len(*exprArgs) > 0 {
		if err := run(strings.Join(*exprArgs, " ")); err != nil {
			log.Fatal(err)
		}
		return
	}

	prompt := isatty.IsTerminal(os.Stdin.Fd())
	if err := gocalc.Repl(os.Stdin, os.Stdout, prompt); err != nil {
		log.Fatal(err)
	}
}
