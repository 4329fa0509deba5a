// textkit - property document and text scanning CLI tool
//
// Usage:
//
//	textkit tokens [--json] [file]        Print the tokens of a document
//	textkit fmt [--compact] [file]        Reformat a property document
//	textkit hash [file]                   Print the layout-independent digest
//	textkit escape [--quote=C] [file]     Quote input with backslash escapes
//	textkit unescape [--quote=C] [file]   Reverse escape
//	textkit card <range>...               Check cardinalities such as 1..*
//	textkit repl                          Interactive formatter
//	textkit version                       Print version info
//
// Files ending in .zst or .gz are decompressed. If no file is given, reads
// from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Neumenon/textkit/cardinality"
	"github.com/Neumenon/textkit/lex"
	"github.com/Neumenon/textkit/props"
	"github.com/Neumenon/textkit/strutil"
)

const libVersion = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "card":
		if err := cmdCard(os.Stdout, args); err != nil {
			fatal("%v", err)
		}
		return
	case "repl":
		os.Exit(cmdRepl())
	case "version", "-v", "--version":
		fmt.Printf("textkit %s\n", libVersion)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	jsonMode := false
	compactMode := false
	quote := byte('"')
	fileArg := ""
	for _, arg := range args {
		switch {
		case arg == "--json":
			jsonMode = true
		case arg == "--compact":
			compactMode = true
		case strings.HasPrefix(arg, "--quote="):
			q := strings.TrimPrefix(arg, "--quote=")
			if len(q) != 1 {
				fatal("--quote wants a single byte, got %q", q)
			}
			quote = q[0]
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			fileArg = arg
		default:
			fatal("unknown option: %s", arg)
		}
	}

	input, err := readInput(fileArg)
	if err != nil {
		fatal("read input: %v", err)
	}

	switch cmd {
	case "tokens":
		err = cmdTokens(os.Stdout, input, jsonMode)
	case "fmt":
		err = cmdFmt(os.Stdout, input, !compactMode)
	case "hash":
		err = cmdHash(os.Stdout, input)
	case "escape":
		fmt.Println(strutil.Escape(strings.TrimRight(input, "\r\n"), quote, true))
	case "unescape":
		err = cmdUnescape(os.Stdout, input, quote)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fatal("%s: %v", cmd, err)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `textkit - property document and text scanning CLI tool

Usage:
  textkit tokens [--json] [file]        Print the tokens of a document
  textkit fmt [--compact] [file]        Reformat a property document
  textkit hash [file]                   Print the layout-independent digest
  textkit escape [--quote=C] [file]     Quote input with backslash escapes
  textkit unescape [--quote=C] [file]   Reverse escape
  textkit card <range>...               Check cardinalities such as 1..*
  textkit repl                          Interactive formatter
  textkit version                       Print version info

Files ending in .zst or .gz are decompressed. If no file is given, reads
from stdin.

Examples:
  echo 'team { size: 11..*; name: "ARS"; }' | textkit fmt
  # Output:
  # team {
  #	size: 11..*;
  #	name: "ARS";
  # }

  textkit fmt --compact squad.props.zst
  textkit card '0..1' '*' '3..2'
`)
}

type tokenJSON struct {
	Type   string `json:"type"`
	Value  string `json:"value,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// cmdTokens prints one token per line, or a JSON array of tokens. A lexical
// error is printed as the last token and returned.
func cmdTokens(w io.Writer, input string, jsonMode bool) error {
	toks, lexErr := lex.Tokenize(input)

	if jsonMode {
		out := make([]tokenJSON, 0, len(toks))
		for _, tok := range toks {
			out = append(out, tokenJSON{
				Type:   tok.Type.String(),
				Value:  tok.Value,
				Line:   tok.Pos.Line,
				Column: tok.Pos.Column,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
		return lexErr
	}

	for _, tok := range toks {
		fmt.Fprintf(w, "%-6s %s\n", tok.Pos, tok)
	}
	return lexErr
}

func cmdFmt(w io.Writer, input string, pretty bool) error {
	out, err := props.Format(input, pretty)
	if err != nil {
		return err
	}
	if pretty {
		_, err = io.WriteString(w, out)
	} else {
		_, err = fmt.Fprintln(w, out)
	}
	return err
}

func cmdHash(w io.Writer, input string) error {
	doc, err := props.Parse(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, doc.Hash())
	return err
}

func cmdUnescape(w io.Writer, input string, quote byte) error {
	s, err := strutil.Unescape(strings.TrimRight(input, "\r\n"), quote, true)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// cmdCard prints the canonical form of each range. Invalid ranges are
// reported and make the command fail once all arguments are checked.
func cmdCard(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("card: no ranges given")
	}
	bad := 0
	for _, arg := range args {
		c, err := cardinality.Parse(arg)
		if err != nil {
			fmt.Fprintf(w, "%-12s error: %v\n", arg, err)
			bad++
			continue
		}
		kind := "range"
		if c.IsFixed() {
			kind = "fixed"
		}
		fmt.Fprintf(w, "%-12s %s (%s)\n", arg, c, kind)
	}
	if bad > 0 {
		return fmt.Errorf("card: %d invalid of %d", bad, len(args))
	}
	return nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "textkit: "+format+"\n", args...)
	os.Exit(1)
}
