package jsonlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_AppendsOneLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	l, err := New(path)
	require.NoError(t, err)

	rec := NewRecord(Peer{IP: "127.0.0.1", Port: 40000})
	rec.Request = json.RawMessage(`{"cmd": "PING"}`)
	rec.Response = json.RawMessage(`{"ok":true,"reply":"PONG"}`)
	l.Log(rec)

	evt := NewRecord(Peer{IP: "127.0.0.1", Port: 40001})
	evt.Event = "timeout"
	evt.Response = json.RawMessage(`{"ok":false,"error":"idle timeout"}`)
	l.Log(evt)

	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 2)

	var first Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "127.0.0.1", first.Peer.IP)
	assert.Equal(t, 40000, first.Peer.Port)
	assert.NotEmpty(t, first.TsUTC)
	// the raw request is compacted by the encoder
	assert.JSONEq(t, `{"cmd":"PING"}`, string(first.Request))

	var second Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "timeout", second.Event)
}

// TestLogger_ConcurrentWriters checks that records from concurrent callers
// never interleave: every line must parse on its own. The queue drops on
// overflow, so the line count may fall short of the records submitted.
func TestLogger_ConcurrentWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	l, err := New(path)
	require.NoError(t, err)

	const writers = 10
	const perWriter = 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				rec := NewRecord(Peer{IP: "10.0.0.1", Port: w})
				rec.Request = json.RawMessage(fmt.Sprintf(`{"cmd":"PING","seq":%d}`, i))
				l.Log(rec)
			}
		}(w)
	}
	wg.Wait()
	require.NoError(t, l.Close())

	lines := readLines(t, path)
	require.NotEmpty(t, lines)
	require.LessOrEqual(t, len(lines), writers*perWriter)
	for i, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "line %d is not valid JSON: %q", i, line)
	}
}

// TestLogger_QueueFullDoesNotBlock checks that Log returns immediately when
// the queue is saturated and nobody is draining it, as happens when the
// writer goroutine is stuck on an unresponsive disk.
func TestLogger_QueueFullDoesNotBlock(t *testing.T) {
	l := &Logger{
		records: make(chan []byte, 1),
		done:    make(chan struct{}),
	}
	l.records <- []byte(`{}`) // saturate the queue, no writer running

	returned := make(chan struct{})
	go func() {
		l.Log(NewRecord(Peer{IP: "127.0.0.1", Port: 1}))
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Log blocked on a full queue")
	}

	// the overflowing record was dropped, the queued one is untouched
	assert.Len(t, l.records, 1)
}

func TestLogger_LogAfterCloseIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	l, err := New(path)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	// must not panic or block
	l.Log(NewRecord(Peer{IP: "127.0.0.1", Port: 1}))
	assert.Empty(t, readLines(t, path))

	// Close is idempotent
	require.NoError(t, l.Close())
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}
