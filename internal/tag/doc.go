// Package tag locates user-delimited tag regions in text.
//
// A tag region is a balanced span of the form
//
//	<open-delimiter> content <close-delimiter>
//
// where the delimiters are arbitrary, non-empty, textually distinct
// strings (for example "|<" and ">|"). Regions of the same delimiter
// shape may nest; the locator tracks nesting with a pair of offset
// stacks so that a scan resolves the outermost balanced region in the
// scan direction.
//
// The Locator owns a single mutable Match describing the most recently
// resolved region. A scan runs over an immutable text snapshot from a
// cursor offset, forward or backward, in O(n) time with O(depth)
// auxiliary space. If the scan exhausts the buffer, the locator may
// retry once from the opposite boundary (wrap-around); a wrapped scan
// never wraps again.
//
// Absence of a tag is a normal outcome, reported as a boolean, never
// as an error. Malformed nesting (more opens than closes) simply fails
// to balance and reports no match.
package tag
