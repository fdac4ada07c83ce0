// Package sink writes composited frames to disk.
//
// The compositor produces plain in-memory images; this package holds the
// encoding collaborators that turn them into artifacts: animated GIFs,
// static PNGs, and the stopping-time scatter plot. Failures (unwritable
// paths, encoder errors) are wrapped with the artifact path and returned;
// there is no retry here.
package sink
