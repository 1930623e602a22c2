package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/podiumlabs/cadence/pkg/speech"
)

// handleStream handles GET /v1/reports/stream. Each text message on the
// socket must be one JSON-encoded [speech.AnalysisInput]; the server answers
// every input with one JSON-encoded report. Malformed inputs get an error
// frame and the connection stays open.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "err", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "server error")

	ctx := r.Context()
	s.metrics.ActiveStreams.Add(ctx, 1)
	defer s.metrics.ActiveStreams.Add(context.WithoutCancel(ctx), -1)

	slog.InfoContext(ctx, "report stream opened", "remote", r.RemoteAddr)

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				slog.InfoContext(ctx, "report stream closed", "remote", r.RemoteAddr)
			} else {
				slog.WarnContext(ctx, "report stream read error", "remote", r.RemoteAddr, "err", err)
			}
			return
		}
		if typ != websocket.MessageText {
			s.writeStreamError(ctx, conn, "expected a text message containing one analysis input")
			continue
		}

		var in speech.AnalysisInput
		if err := json.Unmarshal(data, &in); err != nil {
			s.metrics.RecordAnalysisError(ctx, "stream")
			s.writeStreamError(ctx, conn, "invalid analysis input: "+err.Error())
			continue
		}

		started := time.Now()
		rep, err := s.generator().Generate(ctx, in)
		if err != nil {
			s.metrics.RecordAnalysisError(ctx, "stream")
			// Generate only fails on context cancellation; the next Read
			// will surface the closed connection.
			continue
		}
		s.metrics.RecordReport(ctx, "stream", time.Since(started).Seconds())

		// Stamped per delivery, like the one-shot handler.
		rep.ReportID = uuid.NewString()

		payload, err := json.Marshal(rep)
		if err != nil {
			s.writeStreamError(ctx, conn, "failed to encode report")
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			slog.WarnContext(ctx, "report stream write error", "remote", r.RemoteAddr, "err", err)
			return
		}
	}
}

// writeStreamError sends a JSON error frame on the socket. Write failures are
// left to the main read loop to detect.
func (s *Server) writeStreamError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, err := json.Marshal(errorResponse{Error: msg})
	if err != nil {
		return
	}
	_ = conn.Write(ctx, websocket.MessageText, payload)
}
