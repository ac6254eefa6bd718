package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gkatanacio/segmented-downloader/download"
	"github.com/gkatanacio/segmented-downloader/logging"
)

var (
	downloadOpts download.Options
	headerArgs   []string
	configPath   string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:           "sgdl [URL]",
	Short:         "Download accelerator that fetches a single file over several concurrent byte-range requests.",
	Example:       "./sgdl -s 8 --verify -f destfile.iso http://mirror.example.com/image.iso",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		downloadOpts.Headers = parseHeaderArgs(headerArgs)
		if err := applyConfigFile(cmd); err != nil {
			return err
		}
		if downloadOpts.Segments < 1 {
			return fmt.Errorf("segments must be at least 1, got %d", downloadOpts.Segments)
		}
		logging.Init(debug)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		printInfo(fmt.Sprintf("Downloading %s with %d segment(s)", url, downloadOpts.Segments))

		start := time.Now()
		downloadService := download.NewService(downloadOpts)
		n, err := downloadService.Download(cmd.Context(), url)
		if err != nil {
			return annotateFailure(err, downloadOpts.DestFilePath)
		}

		printSuccess(fmt.Sprintf("Download complete: %s", downloadOpts.DestFilePath))
		printDetail(fmt.Sprintf("%s in %s", humanize.Bytes(uint64(n)), time.Since(start).Round(time.Millisecond)))
		if downloadOpts.Verify && downloadOpts.Segments > 1 {
			printDetail("MD5 checksum matches single-segment baseline")
		}

		return nil
	},
}

// annotateFailure tells the user about output a failed download left behind.
// Only a checksum mismatch leaves a file: the multi-segment result is kept.
func annotateFailure(err error, dest string) error {
	if errors.Is(err, download.ErrConsistency) {
		return fmt.Errorf("%w (multi-segment result kept at %s)", err, dest)
	}
	return err
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err.Error())
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&downloadOpts.DestFilePath, "file", "f", "", "destination file path or s3://bucket/key")
	rootCmd.Flags().IntVarP(&downloadOpts.Segments, "segments", "s", 8, "number of byte ranges fetched concurrently")
	rootCmd.Flags().IntVarP(&downloadOpts.Concurrency, "concurrency", "c", 0, "max concurrent connections (0 = one per segment)")
	rootCmd.Flags().DurationVarP(&downloadOpts.Timeout, "timeout", "t", 0, "timeout for each request, e.g. 30s (0 = none)")
	rootCmd.Flags().DurationVarP(&downloadOpts.KeepAliveTimeout, "keep-alive-timeout", "k", 90*time.Second, "idle keep-alive timeout for pooled connections")
	rootCmd.Flags().StringVarP(&downloadOpts.UserAgent, "user-agent", "a", "sgdl", "user agent")
	rootCmd.Flags().StringArrayVarP(&headerArgs, "header", "H", []string{}, "custom header like 'Authorization: Bearer xyz'; can be repeated")
	rootCmd.Flags().BoolVar(&downloadOpts.Verify, "verify", false, "re-download over a single connection and compare MD5 checksums")
	rootCmd.Flags().BoolVar(&downloadOpts.KeepBaseline, "keep-baseline", false, "keep the single-connection baseline file written by --verify")
	rootCmd.Flags().StringVar(&downloadOpts.AWSProfile, "aws-profile", "", "shared AWS profile for s3:// destinations")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with default option values")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.MarkFlagRequired("file")
}
