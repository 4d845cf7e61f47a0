// Package trace defines the exploration-trace contract between the search
// packages and external visualizers.
//
// A search configured with a Recorder calls Record once per expansion with
// a Frame describing the node just expanded, the visited set, the known
// costs, and (A* only) the pending frontier. Frames are values: every map
// and set inside is a fresh copy made for that frame alone, so later
// progress of the search never shows through an already-recorded Frame.
//
// Recording is opt-in. The default recorder is Nop, and searches check
// Enabled once up front, so a disabled trace costs no copies at all.
package trace
