// Package cue locates the audio stream a CUE sheet describes and
// prepares a normalized UTF-8 copy of the sheet for the external
// tools, which expect clean input regardless of how the sheet was
// originally encoded.
package cue
