package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"cuepress/internal/config"
)

type rootFlags struct {
	configPath  string
	artist      string
	album       string
	genre       string
	disc        string
	outputDir   string
	parallelism int
	logLevel    string
	logFormat   string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "cuepress [directory]",
		Short: "Convert CUE-described albums and lossless files to tagged MP3s",
		Long: `cuepress scans a directory tree for CUE sheets and standalone lossless
audio (FLAC, APE), splits album images into tracks at the CUE
breakpoints, and encodes everything to tagged MP3s with a bounded pool
of encoder processes.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runConvert(cmd, flags, root)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&flags.artist, "artist", "a", "", "Artist tag (required unless set in config)")
	rootCmd.Flags().StringVarP(&flags.album, "album", "l", "", "Album tag override")
	rootCmd.Flags().StringVarP(&flags.genre, "genre", "g", "", "Genre tag")
	rootCmd.Flags().StringVarP(&flags.disc, "disc", "d", "", "Disc number tag")
	rootCmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory root")
	rootCmd.Flags().IntVarP(&flags.parallelism, "parallelism", "j", 0, "Concurrent encoder processes")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newDepsCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newHistoryCommand(flags))

	return rootCmd
}

// loadConfig resolves the configuration file and applies any flags the
// user set on top of it.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, string, error) {
	cfg, resolvedPath, _, err := config.Load(flags.configPath)
	if err != nil {
		return nil, "", err
	}

	set := cmd.Flags().Changed
	if set("artist") {
		cfg.Tags.Artist = flags.artist
	}
	if set("album") {
		cfg.Tags.Album = flags.album
	}
	if set("genre") {
		cfg.Tags.Genre = flags.genre
	}
	if set("disc") {
		cfg.Tags.Disc = flags.disc
	}
	if set("output") {
		abs, err := filepath.Abs(flags.outputDir)
		if err != nil {
			return nil, "", err
		}
		cfg.Output.Dir = abs
	}
	if set("parallelism") {
		cfg.Output.Parallelism = flags.parallelism
	}
	if set("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if set("log-format") {
		cfg.Logging.Format = flags.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, resolvedPath, nil
}
