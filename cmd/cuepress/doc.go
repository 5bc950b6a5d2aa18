// Command cuepress is the batch CUE/lossless to MP3 converter CLI.
// The root command runs a conversion over a directory tree;
// subcommands check external tool availability, manage the
// configuration file, and list past runs.
package main
