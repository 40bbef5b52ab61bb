// Package buffer provides the text storage layer for tag navigation.
//
// A Buffer is a mutable, thread-safe text store addressed by byte
// offsets. It maintains a line-start index so that byte offsets and
// line/column Points can be converted in O(log lines), which is what
// the navigation layer needs to translate scan results into editor
// positions.
//
// Buffers carry two identity values:
//
//   - DocumentID: a stable UUID assigned at creation. Callers that
//     cache offset-based state (such as a resolved tag match) compare
//     DocumentIDs to detect that they are looking at a different
//     document and must discard that state.
//   - RevisionID: bumped on every edit. Cached offsets are only valid
//     against the revision they were computed from.
//
// Snapshots provide an immutable view of the buffer for the duration
// of a scan; see Snapshot.
package buffer
