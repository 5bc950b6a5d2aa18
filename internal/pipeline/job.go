package pipeline

import "cuepress/internal/services/lame"

// Job is one unit of conversion work: a source audio segment, a
// pre-computed unique destination, and the tags to embed. Jobs are
// plain values handed directly to workers.
type Job struct {
	Source      string
	Destination string
	Tags        lame.TrackTags
}

// Result reports one finished job to the per-item observer.
type Result struct {
	Job Job
	Err error
}

// FailureDetail describes one counted failure for the run summary and
// the history store.
type FailureDetail struct {
	Source string
	Detail string
}
