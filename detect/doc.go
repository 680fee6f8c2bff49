// Package detect locates heartbeats (R-peaks) in a filtered ECG record
// and converts inter-beat intervals into heart rates.
//
// Detection is a pluggable strategy behind the [Detector] interface.
// [GlobalThreshold] reproduces the classic single-threshold rule (a
// fraction of the global maximum with a refractory spacing) and is the
// default; [WindowedThreshold] recomputes the threshold per window so a
// single artifact spike or slow amplitude drift does not mask beats
// elsewhere in the record.
package detect
