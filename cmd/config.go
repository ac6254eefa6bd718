package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gkatanacio/segmented-downloader/config"
)

// applyConfigFile fills every option whose flag was not given explicitly from
// the YAML file at configPath.
func applyConfigFile(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}

	f, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	unset := func(name string) bool { return !flags.Changed(name) }

	if unset("segments") && f.Segments > 0 {
		downloadOpts.Segments = f.Segments
	}
	if unset("concurrency") && f.Concurrency > 0 {
		downloadOpts.Concurrency = f.Concurrency
	}
	if unset("timeout") && f.Timeout > 0 {
		downloadOpts.Timeout = f.Timeout
	}
	if unset("keep-alive-timeout") && f.KeepAliveTimeout > 0 {
		downloadOpts.KeepAliveTimeout = f.KeepAliveTimeout
	}
	if unset("user-agent") && f.UserAgent != "" {
		downloadOpts.UserAgent = f.UserAgent
	}
	if unset("verify") {
		downloadOpts.Verify = f.Verify
	}
	if unset("keep-baseline") {
		downloadOpts.KeepBaseline = f.KeepBaseline
	}
	if unset("aws-profile") && f.AWSProfile != "" {
		downloadOpts.AWSProfile = f.AWSProfile
	}
	if unset("debug") {
		debug = f.Debug
	}

	if downloadOpts.Headers == nil {
		downloadOpts.Headers = make(map[string]string, len(f.Headers))
	}
	for k, v := range f.Headers {
		if _, ok := downloadOpts.Headers[k]; !ok {
			downloadOpts.Headers[k] = v
		}
	}

	return nil
}

// parseHeaderArgs turns "Key: Value" arguments into a header map, skipping
// malformed entries.
func parseHeaderArgs(args []string) map[string]string {
	result := make(map[string]string)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		result[key] = strings.TrimSpace(value)
	}
	return result
}
