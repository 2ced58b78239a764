// Command spath evaluates an SPath query against a JSON or TOML document.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/arnodel/spath"
	jsonbackend "github.com/arnodel/spath/backend/json"
	tomlbackend "github.com/arnodel/spath/backend/toml"
	"github.com/arnodel/spath/diag"
	"github.com/arnodel/spath/variant"
)

var (
	formatFlag string
	colorFlag  string
	located    bool
)

func main() {
	cmd := rootCmd()
	cmd.SetOut(colorable.NewColorableStdout())
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		printErr(err)
		os.Exit(1)
	}
}

// printErr reports err on stderr. A *diag.Error carries its own span into
// the original query text, so it gets the caret-diagram treatment from
// diag.Render, colorized the same way as the teacher's colorizer.go +
// cmd/jp/main.go pairing decides colorization for stdout: via go-isatty on
// the relevant stream, gated by -color. Every other error - a bad file
// path, an unreadable document - is just printed, exactly as the teacher's
// cmd/jp/main.go prints "error while parsing: %s" with a bare Fprintf.
func printErr(err error) {
	stderr := colorable.NewColorableStderr()
	var de *diag.Error
	if errors.As(err, &de) {
		fmt.Fprintln(stderr, diag.Render(de, colorDecision(colorFlag, os.Stderr.Fd())))
		return
	}
	fmt.Fprintln(stderr, err)
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spath",
		Short: "Evaluate SPath queries (a JSONPath-like language, in the style of RFC 9535) against JSON or TOML documents",
	}
	cmd.AddCommand(queryCmd(), checkCmd())
	return cmd
}

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query FILE EXPR",
		Short: "Run an SPath query against a JSON or TOML file",
		Long: `query evaluates an SPath query EXPR against the document in FILE,
auto-detecting JSON vs TOML from the file extension unless --format is
given.`,
		Args: cobra.ExactArgs(2),
		RunE: runQuery,
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "auto", "input format: auto, json, toml")
	cmd.Flags().StringVar(&colorFlag, "color", "auto", "colorize output: auto, always, never")
	cmd.Flags().BoolVarP(&located, "located", "l", false, "print the normalized path of each result alongside its value")
	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check EXPR",
		Short: "Parse an SPath query and report whether it is valid",
		Long: `check parses EXPR without evaluating it against any document. On
success it prints the query's canonical (re-rendered) form; on failure it
prints the parse diagnostic and exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().StringVar(&colorFlag, "color", "auto", "colorize output: auto, always, never")
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	name, queryText := args[0], args[1]

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	format := formatFlag
	if format == "auto" {
		format = guessFormat(name)
	}

	doc, err := decode(format, f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}

	sp, err := spath.Parse(queryText)
	if err != nil {
		return err
	}

	col := colorizerFor(colorFlag)
	out := cmd.OutOrStdout()

	if located {
		for _, n := range sp.QueryLocated(doc) {
			fmt.Fprintf(out, "%s: ", n.Path.String())
			writeValue(out, n.Value, col)
			fmt.Fprintln(out)
		}
		return nil
	}
	for _, v := range sp.Query(doc) {
		writeValue(out, v, col)
		fmt.Fprintln(out)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	sp, err := spath.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), sp.String())
	return nil
}

func guessFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

func decode(format string, r io.Reader) (variant.Value, error) {
	switch format {
	case "toml":
		return tomlbackend.Decode(r)
	case "json":
		return jsonbackend.Decode(r)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
