// Package pipeline drives the two-phase conversion run: CUE-driven
// album splitting first, then standalone lossless files, with each
// batch dispatched to a bounded pool of encoder workers.
//
// Failure isolation is the governing policy. A sheet that cannot be
// resolved, a track whose split output is missing, or an encode that
// exits nonzero each increment the shared failure counter and the run
// moves on; only an unusable working or output directory aborts a run.
package pipeline
