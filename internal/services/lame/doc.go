// Package lame wraps the lame CLI encoder. Tracks are encoded at a
// fixed high-quality variable-bitrate setting with any resolved
// metadata embedded as ID3 tags.
package lame
