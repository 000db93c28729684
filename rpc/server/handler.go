package server

import (
	"net"
	"time"

	"github.com/pg84s/loankv/lib/jsonlog"
	"github.com/pg84s/loankv/rpc/common"
	"github.com/pg84s/loankv/rpc/wire"
	"github.com/sirupsen/logrus"
)

// handleConnection drives one connection through its lifecycle: wait for a
// frame, dispatch it, send the response, append the audit record, repeat.
// The loop is strictly sequential, so responses always leave in request
// order. Exits: peer close, idle timeout, or a failed write. The connection
// is released on every exit path.
func (s *Server) handleConnection(id uint64, conn net.Conn) {
	defer func() {
		_ = conn.Close()
		s.conns.Delete(id)
		liveConns.Add(-1)
		s.wg.Done()
	}()

	peer := peerOf(conn)
	idle := time.Duration(s.config.IdleTimeoutSecond) * time.Second

	for {
		if err := conn.SetReadDeadline(time.Now().Add(idle)); err != nil {
			logrus.Errorf("failed to set read deadline for %s:%d: %v", peer.IP, peer.Port, err)
			return
		}

		payload, err := wire.ReadFrame(conn)

		// Case idle timeout: send exactly one error response, log the
		// event, close the connection
		if wire.IsTimeout(err) {
			respData := common.NewErrorResponse("idle timeout").Encode()
			if werr := wire.WriteFrame(conn, respData); werr != nil {
				logrus.Debugf("failed to send timeout response to %s:%d: %v", peer.IP, peer.Port, werr)
			}
			rec := jsonlog.NewRecord(peer)
			rec.Event = "timeout"
			rec.Response = respData
			s.audit.Log(rec)
			idleTimeouts.Inc()
			logrus.Infof("connection from %s:%d idle for %s, closing", peer.IP, peer.Port, idle)
			return
		}

		// Case peer closed the stream (or truncated it mid-frame): close
		// without responding
		if wire.IsClosed(err) {
			logrus.Debugf("connection from %s:%d closed by peer", peer.IP, peer.Port)
			return
		}

		var req *common.Request
		if err == nil {
			req, err = common.DecodeRequest(payload)
		}

		// Case oversized frame or malformed payload: report it to the
		// caller, log a read_error event, keep the connection open
		if err != nil {
			respData := common.NewErrorResponse(err.Error()).Encode()
			if werr := wire.WriteFrame(conn, respData); werr != nil {
				logrus.Errorf("failed to write error response to %s:%d: %v", peer.IP, peer.Port, werr)
				return
			}
			rec := jsonlog.NewRecord(peer)
			rec.Event = "read_error"
			rec.Error = err.Error()
			s.audit.Log(rec)
			readErrors.Inc()
			continue
		}

		// Dispatch never fails: every error becomes an {ok:false} response
		resp := Dispatch(req, s.store)
		countRequest(req.Cmd)

		respData := resp.Encode()
		if err := wire.WriteFrame(conn, respData); err != nil {
			logrus.Errorf("failed to write response to %s:%d: %v", peer.IP, peer.Port, err)
			return
		}

		// Audit the exchange. The raw payload is logged rather than the
		// re-marshaled request, so fields the command ignored are kept.
		rec := jsonlog.NewRecord(peer)
		rec.Request = payload
		rec.Response = respData
		s.audit.Log(rec)
	}
}

// peerOf extracts ip and port from the connection's remote address
func peerOf(conn net.Conn) jsonlog.Peer {
	if addr, ok := conn.RemoteAddr().(*net.TCPAddr); ok {
		return jsonlog.Peer{IP: addr.IP.String(), Port: addr.Port}
	}
	return jsonlog.Peer{IP: conn.RemoteAddr().String()}
}
