// Package cmd — check and interactive commands.
// Both run the same analysis: load → find → report. The interactive
// command wraps it in a prompt loop; errors print one line and the loop
// keeps going.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jayesh-JainX/stylecheck/core"
	"github.com/Jayesh-JainX/stylecheck/core/parse"
	"github.com/Jayesh-JainX/stylecheck/core/report"
)

var checkCmd = &cobra.Command{
	Use:   "check <file> <phrase>",
	Short: "Locate a phrase in a document and report the adjacent formatting",
	Long: `Check loads a document, extracts its text with per-character styling,
searches for the phrase (exact first, then a first-word/last-word
fallback), and prints the styles immediately before and after the match.

Examples:
  stylecheck check notes.html "i work in tooliqa"
  stylecheck check report.docx "quarterly results"`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for files and phrases in a loop",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(interactiveCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	return checkOne(os.Stdout, args[0], args[1])
}

// checkOne runs a single analysis and prints the report. A phrase that is
// not found is a normal outcome, not an error.
func checkOne(w io.Writer, path, phrase string) error {
	seq, err := parse.Load(path)
	if err != nil {
		return err
	}

	text := seq.Text()
	log.Debug().Str("file", path).Int("chars", len(seq)).Msg("document loaded")

	fmt.Fprintf(w, "Loaded %d characters from %s\n", len(seq), path)
	fmt.Fprintf(w, "Sample: %s\n", sample(text, 50))

	rep, ok := report.Analyze(seq, phrase)
	if !ok {
		fmt.Fprintf(w, "%q not found in the text\n", phrase)
		return nil
	}

	log.Debug().Int("start", rep.Span.Start).Int("end", rep.Span.End).Msg("phrase located")

	fmt.Fprintf(w, "Found %q at position %d-%d\n", phrase, rep.Span.Start, rep.Span.End)
	fmt.Fprintf(w, "Before: %s\n", sideLine(rep.Before))
	fmt.Fprintf(w, "After:  %s\n", sideLine(rep.After))
	fmt.Fprintf(w, "Context: %s\n", rep.Context)
	return nil
}

// sideLine renders one before/after line: the character and its descriptor.
func sideLine(c *core.CharStyle) string {
	if c == nil {
		return core.NoCharacter
	}
	return fmt.Sprintf("%q -> %s", c.Char, c.Descriptor())
}

func sample(text string, n int) string {
	rs := []rune(text)
	if len(rs) <= n {
		return text
	}
	return string(rs[:n]) + "..."
}

// runInteractive is a strictly sequential prompt loop: one file path and
// one phrase per iteration, no state carried between analyses.
func runInteractive(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, "StyleCheck")
	fmt.Fprintf(out, "Supports: %s\n", strings.Join(parse.SupportedExtensions(), ", "))

	for {
		fmt.Fprint(out, "\nFile path ('quit' or 'q'): ")
		if !in.Scan() {
			return in.Err()
		}
		path := strings.TrimSpace(in.Text())
		switch strings.ToLower(path) {
		case "quit", "q":
			return nil
		case "":
			continue
		}

		fmt.Fprint(out, "Search text: ")
		if !in.Scan() {
			return in.Err()
		}
		phrase := strings.TrimSpace(in.Text())
		if phrase == "" {
			fmt.Fprintln(out, "Need search text!")
			continue
		}

		if err := checkOne(out, path, phrase); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, strings.Repeat("=", 40))
	}
}
