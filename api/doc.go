// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for hioload-rq: the fixed-capacity ring queue operation
// set and the status codes every mutating or reading operation returns.
//
// The engine implementation lives in package ringq; api carries only the
// interface and status vocabulary so adapters, fakes and user code can be
// written against a stable surface.
package api
