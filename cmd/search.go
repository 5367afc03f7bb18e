// file: cmd/search.go
// version: 1.0.0
// guid: e8f45bc5-300f-46dd-842e-cd8e0956d21c

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jdfalk/spotlight/internal/config"
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search NEEDLE [CANDIDATE...]",
	Short: "Rank candidates by similarity to NEEDLE",
	Long: `Rank candidates by similarity to NEEDLE with the active metric, best first.

Candidates are taken from the remaining arguments, or from --file, or one per
line from stdin when neither is given. An empty NEEDLE returns the candidates
in their original order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(config.AppConfig)
		if err != nil {
			return err
		}

		haystack, err := readCandidates(cmd, args[1:])
		if err != nil {
			return err
		}

		results, err := engine.SearchScored(args[0], haystack, config.AppConfig.Limit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			if config.AppConfig.ShowScores {
				fmt.Fprintf(out, "%s\t%s\n", strconv.FormatFloat(r.Score, 'g', -1, 64), r.Value)
			} else {
				fmt.Fprintln(out, r.Value)
			}
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntP("limit", "n", 0, "maximum number of results (0 returns all)")
	searchCmd.Flags().StringP("file", "f", "", "read candidates from this file, one per line (- for stdin)")
	searchCmd.Flags().Bool("scores", false, "print the score before each result")
}

func readCandidates(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	path, _ := cmd.Flags().GetString("file")
	if path == "" || path == "-" {
		return readLines(cmd.InOrStdin())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidates file: %w", err)
	}
	defer f.Close()
	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return lines, nil
}
