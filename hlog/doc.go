// Package hlog
// Author: momentics <momentics@gmail.com>
//
// Tag-scoped leveled logger with a pluggable line callback. Each Logger
// instance owns an isolated tag, enable flag, minimum-level filter and
// output callback; disabled or filtered calls cost one branch and produce
// no output.
//
// A formatted line is "[L] (TAG): message\r\n", truncated to the logger's
// fixed maximum length. The callback decides delivery: write to a UART or
// file, or push into a textq.TextQueue for deferred draining (package
// drain implements that composition).
//
// Loggers are not reentrant and not goroutine-safe; serialize calls in
// concurrent environments.
package hlog
