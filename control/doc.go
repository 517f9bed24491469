// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime control layer for hioload-rq: configuration with reload
// listeners and YAML file loading, counter metrics, and debug probe
// registration. The drain worker reads its tuning from here and reports
// its throughput back; nothing in this package touches queue internals.
package control
