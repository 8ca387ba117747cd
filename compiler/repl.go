package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/tebeka/atexit"
	"github.com/xiaobogaga/bfc/compiler/internal"
)

const (
	promptMain  = "bfc> "
	promptCont  = "...  "
	historyFile = ".bfc_history"
)

const replHelp = "commands: :ir toggles the program output, :code toggles the generated code, :quit exits"

// replSession compiles one entry at a time and prints the parsed program and the generated code.
type replSession struct {
	config   *internal.Config
	backend  internal.Backend
	showIR   bool
	showCode bool
	out      io.Writer
	errOut   io.Writer
}

func runRepl(config *internal.Config) int {
	backend, err := internal.LookupBackend(config.Backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	atexit.Register(func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
		_ = ln.Close()
	})

	session := &replSession{
		config:   config,
		backend:  backend,
		showIR:   true,
		showCode: true,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
	fmt.Println(replHelp)
	for {
		entry, ok := session.readEntry(ln)
		if !ok {
			fmt.Println()
			return exitOK
		}
		if session.handle(entry) {
			return exitOK
		}
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
	}
}

// readEntry reads lines until they form a complete entry: input that parses, fails for a reason more lines
// cannot fix, or a command.
func (session *replSession) readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			fmt.Fprintln(session.errOut, err)
			return "", false
		}
		if b.Len() == 0 && isReplCommand(line) {
			return line, true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		_, err = internal.ParseWithDepth(b.String(), session.config.MaxDepth)
		if internal.IsIncomplete(err) {
			continue
		}
		return b.String(), true
	}
}

func isReplCommand(line string) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":ir", ":code", ":help":
		return true
	}
	return false
}

// handle runs one entry and reports whether the session should end.
func (session *replSession) handle(entry string) bool {
	switch strings.TrimSpace(entry) {
	case ":quit":
		return true
	case ":ir":
		session.showIR = !session.showIR
		fmt.Fprintf(session.out, "program output: %t\n", session.showIR)
		return false
	case ":code":
		session.showCode = !session.showCode
		fmt.Fprintf(session.out, "code output: %t\n", session.showCode)
		return false
	case ":help":
		fmt.Fprintln(session.out, replHelp)
		return false
	case "":
		return false
	}
	result, err := internal.Compile(entry, session.backend, session.config.Options())
	if err != nil {
		fmt.Fprintln(session.errOut, err)
		return false
	}
	if session.showIR {
		fmt.Fprintln(session.out, result.Program.String())
	}
	if session.showCode {
		fmt.Fprint(session.out, result.Code)
	}
	return false
}
