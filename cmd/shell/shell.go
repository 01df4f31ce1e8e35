package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/robertkrimen/isatty"
	"github.com/vilterp/proplog/pkg/formula"
	"github.com/vilterp/proplog/pkg/verify"
)

var historyFile = flag.String("history", "/tmp/.proplog-history", "readline history file")

func main() {
	// get cmdline flags
	flag.Parse()

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("proplog shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	if isInputTty {
		prompt = "proplog> "
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       *historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			os.Exit(0)
		}
		handleLine(strings.TrimSpace(line))
	}
}

func handleLine(line string) {
	switch line {
	case "":
	case `\h`:
		fmt.Println("enter a closed formula to evaluate it, e.g. ~(T & F) -> F")
		fmt.Println("literals: T F   connectives: ~ & | -> <->")
		fmt.Println(`\t  print the truth table of each connective`)
		fmt.Println(`\q  quit`)
	case `\t`:
		for _, table := range verify.Tables() {
			fmt.Println(table.Format().String())
		}
	case `\q`:
		fmt.Println("bye!")
		os.Exit(0)
	default:
		f, err := formula.Parse(line)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s = %s\n", f.Format().String(), letter(f.Eval()))
	}
}

func letter(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
