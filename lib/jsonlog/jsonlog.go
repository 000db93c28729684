package jsonlog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// queueSize bounds how many records may be waiting for the writer goroutine
const queueSize = 256

// Peer identifies the remote end of a connection in a log record.
type Peer struct {
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

// Record is one audit log entry. Exactly one of the two groups is used per
// record: Request/Response for a completed exchange, Event (plus optionally
// Error or Response) for a diagnostic.
type Record struct {
	TsUTC    string          `json:"ts_utc"`
	Peer     Peer            `json:"peer"`
	Request  json.RawMessage `json:"request,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
	Event    string          `json:"event,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// NewRecord creates a record stamped with the current UTC time.
func NewRecord(peer Peer) Record {
	return Record{
		TsUTC: time.Now().UTC().Format(time.RFC3339Nano),
		Peer:  peer,
	}
}

// Logger appends records to a JSON Lines file. All writes go through a single
// goroutine, so concurrent Log calls are serialized and no partial lines can
// interleave. Log itself only marshals and queues; it never waits on disk.
type Logger struct {
	path    string
	file    *os.File
	records chan []byte
	done    chan struct{}

	mu     sync.RWMutex // guards closed against concurrent Log/Close
	closed bool
}

// New opens (or creates) the log file in append mode and starts the writer.
func New(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	l := &Logger{
		path:    path,
		file:    file,
		records: make(chan []byte, queueSize),
		done:    make(chan struct{}),
	}
	go l.writeLoop()
	return l, nil
}

// Log queues one record for appending. The record is marshaled to compact
// JSON here (embedded raw messages are compacted by the encoder, so a record
// is always exactly one line). Failures are logged and swallowed, and a full
// queue drops the record: the audit log is a best-effort side channel and
// must never abort or stall command processing.
func (l *Logger) Log(rec Record) {
	line, err := json.Marshal(rec)
	if err != nil {
		logrus.Warnf("jsonlog: failed to marshal record: %v", err)
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		logrus.Warnf("jsonlog: dropping record, logger closed")
		return
	}
	select {
	case l.records <- line:
	default:
		// a stalled writer must not stall the caller
		logrus.Warnf("jsonlog: queue full, dropping record")
	}
}

// Close flushes all queued records and closes the file. After Close, further
// Log calls are dropped.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.records)
	l.mu.Unlock()

	<-l.done
	return l.file.Close()
}

// writeLoop is the single writer goroutine. It drains the queue in arrival
// order, which gives the log its monotonic append order.
func (l *Logger) writeLoop() {
	defer close(l.done)
	for line := range l.records {
		if _, err := l.file.Write(append(line, '\n')); err != nil {
			logrus.Errorf("jsonlog: failed to append to %s: %v", l.path, err)
		}
	}
}
