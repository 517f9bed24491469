// File: textq/textq_test.go
// Author: momentics <momentics@gmail.com>

package textq_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-rq/api"
	"github.com/momentics/hioload-rq/textq"
)

func pull[S textq.Chars](t *testing.T, q *textq.TextQueue[S]) string {
	t.Helper()
	dst := make([]byte, 512)
	require.True(t, q.PullString(dst))
	end := bytes.IndexByte(dst, 0)
	require.GreaterOrEqual(t, end, 0, "pulled line must be NUL-terminated")
	return string(dst[:end])
}

func TestRoundTrip(t *testing.T) {
	q := textq.New[textq.Line32](4)
	require.Equal(t, api.StatusOK, q.PushString("hello"))
	require.Equal(t, api.StatusOK, q.PushString("world"))

	assert.Equal(t, "hello", pull(t, q))
	assert.Equal(t, "world", pull(t, q))
	assert.False(t, q.PullString(make([]byte, 8)))
}

// TestPushTruncation pins the element-side rule: at most S-1 content
// bytes survive, terminator at S-1 regardless of input length.
func TestPushTruncation(t *testing.T) {
	q := textq.New[textq.Line16](2)
	long := strings.Repeat("x", 40)
	require.Equal(t, api.StatusOK, q.PushString(long))

	got := pull(t, q)
	assert.Equal(t, strings.Repeat("x", 15), got)
}

// TestPullTruncation pins the output-side rule: a destination smaller
// than the stored line truncates again to len(dst)-1 bytes plus NUL.
func TestPullTruncation(t *testing.T) {
	q := textq.New[textq.Line64](2)
	require.Equal(t, api.StatusOK, q.PushString("abcdefghij"))

	dst := make([]byte, 5)
	require.True(t, q.PullString(dst))
	assert.Equal(t, []byte{'a', 'b', 'c', 'd', 0}, dst)
}

func TestPullEmptyLeavesDstUntouched(t *testing.T) {
	q := textq.New[textq.Line32](2)
	dst := []byte{'s', 'e', 'n', 't', 'i', 'n', 'e', 'l'}
	assert.False(t, q.PullString(dst))
	assert.Equal(t, []byte("sentinel"), dst)
}

func TestPullZeroCapacityDstDoesNotDequeue(t *testing.T) {
	q := textq.New[textq.Line32](2)
	q.PushString("keep")
	assert.False(t, q.PullString(nil))
	assert.Equal(t, 1, q.Len(), "line must still be queued")
}

// TestOverwriteKeepsNewestLines exercises the promoted engine policy
// through the string surface.
func TestOverwriteKeepsNewestLines(t *testing.T) {
	q := textq.New[textq.Line32](3)
	for _, s := range []string{"one", "two", "three", "four"} {
		require.Equal(t, api.StatusOK, q.PushString(s))
	}
	assert.Equal(t, "two", pull(t, q))
	assert.Equal(t, "three", pull(t, q))
	assert.Equal(t, "four", pull(t, q))
}

func TestNamedElementType(t *testing.T) {
	type Line [16]byte // ~[16]byte satisfies Chars
	q := textq.New[Line](2)
	require.Equal(t, api.StatusOK, q.PushString("named"))
	assert.Equal(t, "named", pull(t, q))
}

func TestMakeLineAndLineString(t *testing.T) {
	l := textq.MakeLine[textq.Line16]("short")
	assert.Equal(t, "short", textq.LineString(l))

	full := textq.MakeLine[textq.Line16](strings.Repeat("y", 99))
	assert.Len(t, textq.LineString(full), 15)
}

func TestNilHandle(t *testing.T) {
	var q *textq.TextQueue[textq.Line32]
	assert.Equal(t, api.StatusNullHandle, q.PushString("x"))
	assert.False(t, q.PullString(make([]byte, 4)))
}
