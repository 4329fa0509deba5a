package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/Neumenon/textkit/props"
)

const (
	historyFile = ".textkit_history"
	promptMain  = "tk> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("textkit %s REPL\nEnter a property document to reformat it. Ctrl+D exits. Type :help for commands.", libVersion)

const replHelp = `REPL commands:
  :pretty    Print documents indented (default)
  :compact   Print documents on one line
  :tokens    Toggle printing tokens instead of documents
  :quit      Exit the REPL
`

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// replState holds the output mode between inputs.
type replState struct {
	pretty bool
	tokens bool
}

// command applies a :command. It reports false for :quit.
func (st *replState) command(w io.Writer, cmd string) bool {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case ":quit", ":q":
		return false
	case ":pretty":
		st.pretty = true
	case ":compact":
		st.pretty = false
	case ":tokens":
		st.tokens = !st.tokens
		fmt.Fprintf(w, "tokens %s\n", onOff(st.tokens))
	case ":help":
		fmt.Fprint(w, replHelp)
	default:
		fmt.Fprintln(w, "unknown command. Type :help for commands.")
	}
	return true
}

func (st *replState) eval(w io.Writer, src string) error {
	if st.tokens {
		return cmdTokens(w, src, false)
	}
	return cmdFmt(w, src, st.pretty)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// incomplete reports whether src only fails because a block is still open.
func incomplete(src string) bool {
	_, err := props.Parse(src)
	var perr *props.ParseError
	return errors.As(err, &perr) && strings.HasPrefix(perr.Message, "unclosed block")
}

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	st := &replState{pretty: true}
	for {
		src, ok := readDocument(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if !st.command(os.Stdout, trimmed) {
				return 0
			}
			continue
		}
		if err := st.eval(os.Stdout, src); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
	}
}

// readDocument reads lines until they form a document with no open block.
// Ctrl+C drops the pending input.
func readDocument(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !incomplete(src) {
			return src, true
		}
	}
}
