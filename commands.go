// commands.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"file-emporium/tools/archive"
	"file-emporium/tools/filetool"
	"file-emporium/tools/pdftool"
)

var (
	sizeMB       int
	outDir       string
	bundleZip    bool
	segmentsJSON string
	namesJSON    string
)

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split a file into numbered chunks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		size := cfg.Tools.ChunkSizeBytes()
		if sizeMB > 0 {
			size = int64(sizeMB) * 1024 * 1024
		}
		dir, err := ensureOut(outDir)
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		chunks, err := filetool.Chunk(ctx, args[0], size, dir, cfg.Tools.MaxParallel)
		if err != nil {
			return err
		}
		if bundleZip && len(chunks) > 1 {
			zipPath, err := archive.MakeZip(chunks, dir, "output.zip")
			if err != nil {
				return err
			}
			log.Info("chunks bundled", zap.String("zip", zipPath))
		}
		for _, c := range chunks {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

var joinCmd = &cobra.Command{
	Use:   "join <output> <chunk>...",
	Short: "Reassemble chunks, in the given order, into output",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signalContext()
		defer stop()

		if err := filetool.Reassemble(ctx, args[1:], args[0]); err != nil {
			return err
		}
		log.Info("file reassembled", zap.String("output", args[0]), zap.Int("chunks", len(args)-1))
		return nil
	},
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <input.pdf>...",
	Short: "Build one PDF per segment from page ranges of the inputs",
	Long: `Segments is a JSON array of segments; each segment is an array of
{"fileIndex", "startPage", "endPage"} ranges. Names holds one output name per
segment. A single output is written as-is, several are zipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		segments, err := pdftool.ParseSegments(segmentsJSON, namesJSON)
		if err != nil {
			return err
		}
		dir, err := ensureOut(outDir)
		if err != nil {
			return err
		}

		ctx, stop := signalContext()
		defer stop()

		result, err := pdftool.Process(ctx, args, segments, dir, cfg.Tools.MaxParallel)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	splitCmd.Flags().IntVar(&sizeMB, "size-mb", 0, "chunk size in MB (default: tools.chunk_size_mb)")
	splitCmd.Flags().BoolVar(&bundleZip, "zip", false, "also bundle the chunks into output.zip")
	for _, c := range []*cobra.Command{splitCmd, pdfCmd} {
		c.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	}
	pdfCmd.Flags().StringVar(&segmentsJSON, "segments", "", "segments JSON")
	pdfCmd.Flags().StringVar(&namesJSON, "names", "", "names JSON")
	_ = pdfCmd.MarkFlagRequired("segments")
	_ = pdfCmd.MarkFlagRequired("names")
}

func ensureOut(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
