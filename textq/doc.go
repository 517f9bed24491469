// Package textq
// Author: momentics <momentics@gmail.com>
//
// Fixed-length text element adapter over the ringq engine. Elements are
// plain byte arrays carrying a NUL-terminated line, so a queue of them has
// a fixed memory footprint and moves lines by value with no per-message
// allocation. PushString truncates silently to the element size;
// PullString truncates again to the caller's buffer.
//
// The intended use is deferred line transport: format once, push into a
// TextQueue from the producing context, drain from a safe context (see
// package drain).
package textq
