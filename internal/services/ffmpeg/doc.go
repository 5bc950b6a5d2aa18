// Package ffmpeg wraps the ffmpeg CLI for decoding compressed lossless
// sources (APE) to uncompressed WAV intermediates before splitting.
package ffmpeg
