package server

import (
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/VictoriaMetrics/metrics"
	"github.com/pg84s/loankv/lib/jsonlog"
	"github.com/pg84s/loankv/lib/store"
	"github.com/pg84s/loankv/rpc/common"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sirupsen/logrus"
)

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

var (
	liveConns    atomic.Int64
	idleTimeouts = metrics.NewCounter("loankv_idle_timeouts_total")
	readErrors   = metrics.NewCounter("loankv_read_errors_total")
	_            = metrics.NewGauge("loankv_active_connections", func() float64 {
		return float64(liveConns.Load())
	})
)

// countRequest bumps the per-command request counter
func countRequest(cmd string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`loankv_requests_total{cmd=%q}`, strings.ToUpper(cmd))).Inc()
}

// --------------------------------------------------------------------------
// Server
// --------------------------------------------------------------------------

// Server accepts connections and drives one handler per connection. All
// handlers share the single store and audit logger passed to NewServer;
// neither is ambient state, the invariants they carry are visible at every
// call site.
type Server struct {
	config common.ServerConfig
	store  store.IStore
	audit  *jsonlog.Logger

	listener net.Listener
	conns    *xsync.MapOf[uint64, string] // conn id -> remote address
	nextID   atomic.Uint64
	wg       sync.WaitGroup
	stopping atomic.Bool
}

// NewServer creates a server operating on the given store and audit logger.
//
// Usage:
//
//	s := server.NewServer(config, memstore.NewMemStore(), audit)
//	if err := s.ListenAndServe(); err != nil {
//		panic(err)
//	}
func NewServer(config common.ServerConfig, st store.IStore, audit *jsonlog.Logger) *Server {
	return &Server{
		config: config,
		store:  st,
		audit:  audit,
		conns:  xsync.NewMapOf[uint64, string](),
	}
}

// Listen binds the configured address. Split from Serve so callers (and
// tests binding port 0) can learn the bound address before accepting.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.config.Endpoint())
	if err != nil {
		return fmt.Errorf("failed to create listener: %v", err)
	}
	s.listener = listener
	return nil
}

// Addr returns the bound listener address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until Shutdown, then waits for all running
// handlers to finish. In-flight handlers are never cancelled, only new
// accepts stop.
func (s *Server) Serve() error {
	if s.listener == nil {
		return fmt.Errorf("server is not listening, call Listen first")
	}

	if s.config.MetricsEndpoint != "" {
		go s.serveMetrics()
	}

	logrus.Infof("serving on %s", s.listener.Addr())

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.stopping.Load() {
				break
			}
			logrus.Errorf("accept error: %v", err)
			continue
		}

		id := s.nextID.Add(1)
		s.conns.Store(id, conn.RemoteAddr().String())
		liveConns.Add(1)
		s.wg.Add(1)
		go s.handleConnection(id, conn)
	}

	if peers := s.activePeers(); len(peers) > 0 {
		logrus.Infof("listener stopped, draining %d active connections: %s", len(peers), strings.Join(peers, ", "))
	} else {
		logrus.Infof("listener stopped, no active connections")
	}
	s.wg.Wait()
	logrus.Infof("all connections drained")
	return nil
}

// activePeers lists the remote addresses of the connections currently being
// served, sorted for stable log output.
func (s *Server) activePeers() []string {
	peers := make([]string, 0, s.conns.Size())
	s.conns.Range(func(_ uint64, addr string) bool {
		peers = append(peers, addr)
		return true
	})
	sort.Strings(peers)
	return peers
}

// ListenAndServe binds the configured address and serves until Shutdown.
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown stops accepting new connections. Serve returns once the already
// accepted connections have finished. Safe to call more than once.
func (s *Server) Shutdown() {
	if s.stopping.CompareAndSwap(false, true) {
		logrus.Infof("shutting down")
		if s.listener != nil {
			_ = s.listener.Close()
		}
	}
}

// serveMetrics exposes the Prometheus text format on a side listener
func (s *Server) serveMetrics() {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		metrics.WritePrometheus(w, true)
	})
	logrus.Infof("metrics listening on %s", s.config.MetricsEndpoint)
	if err := http.ListenAndServe(s.config.MetricsEndpoint, mux); err != nil {
		logrus.Errorf("metrics listener failed: %v", err)
	}
}
