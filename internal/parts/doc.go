// Package parts coordinates a dynamic collection of window parts, each
// owning a set of editor groups, and presents them as one unified
// editor-group service.
//
// The Coordinator owns the part registry (main part first, auxiliary parts
// added and removed dynamically), aggregates every part's event streams into
// system-wide streams, tracks most-recently-active parts, routes
// group-targeted operations to the owning part, and persists/restores the
// cross-part UI snapshot across process restarts.
//
// Readiness is two-phase: the Ready latch settles once the layout is visible
// and interactive, the Restored latch once previously open content has been
// fully reopened. Both are one-shot and tolerate individual part failures.
package parts
