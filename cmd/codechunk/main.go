package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"codechunk/chunker"
	"codechunk/schema"
	"codechunk/textsplitter"
)

var (
	flagEncoding string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "codechunk <strategy> <filepath> [chunk-size] [overlap]",
	Short: "Chunk a document from stdin into line-addressed chunks",
	Long: `Chunk a document into line-addressed chunks.

The document body is read from stdin; the filepath argument is used for
language detection and chunk IDs only and does not have to exist. On
success a JSON array of chunks is written to stdout. On failure a single
{"error": "..."} object is written to stdout and the exit status is 1.

Examples:
  cat main.go | codechunk structure-aware main.go 1200
  cat notes.txt | codechunk sentence-boundary notes.txt 500
  cat app.py | codechunk recursive-character app.py 1500 100`,
	Args:          cobra.RangeArgs(2, 4),
	RunE:          runChunk,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.Flags().StringVar(&flagEncoding, "encoding", "", "tiktoken encoding for token statistics (e.g. cl100k_base)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runChunk(cmd *cobra.Command, args []string) error {
	req := schema.Request{
		Strategy:  schema.Strategy(args[0]),
		Source:    args[1],
		ChunkSize: 1500,
	}

	if len(args) > 2 {
		size, err := strconv.Atoi(args[2])
		if err != nil {
			return fail(cmd, fmt.Errorf("invalid chunk size %q: %w", args[2], err))
		}
		req.ChunkSize = size
	}
	if len(args) > 3 {
		overlap, err := strconv.Atoi(args[3])
		if err != nil {
			return fail(cmd, fmt.Errorf("invalid overlap %q: %w", args[3], err))
		}
		req.Overlap = overlap
	}

	body, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fail(cmd, fmt.Errorf("read stdin: %w", err))
	}
	req.Content = string(body)

	opts := []chunker.Option{}
	if flagEncoding != "" {
		tokenizer, err := textsplitter.NewTiktokenTokenizer(flagEncoding)
		if err != nil {
			return fail(cmd, err)
		}
		opts = append(opts, chunker.WithTokenizer(tokenizer))
	}

	c, err := chunker.New(newLogger(), opts...)
	if err != nil {
		return fail(cmd, err)
	}

	chunks, err := c.Run(cmd.Context(), req)
	if err != nil {
		return fail(cmd, err)
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(chunks)
}

// fail writes the structured failure object to stdout so callers always
// receive exactly one JSON value, then propagates the error for the exit
// status.
func fail(cmd *cobra.Command, err error) error {
	_ = json.NewEncoder(cmd.OutOrStdout()).Encode(schema.Failure{Error: err.Error()})
	return err
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
