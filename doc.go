// Package segfile appends serialized records to file segments with
// commit/revert semantics.
//
// A SegmentWriter streams values through a serialization, buffering and
// compression pipeline into a single backing file opened in append mode.
// On commit the pipeline is flushed in order and the committed byte range
// is published as a Segment. On revert the file is truncated back to its
// length at construction time, discarding everything written since.
//
// A writer instance is single-threaded by contract: callers must
// serialize all calls to one instance. Independent instances over
// different files may run concurrently with no shared state.
package segfile
