package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eaglemaker22/mbsgoat-sub000/internal/application"
	infraconfig "github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/config"
	"github.com/eaglemaker22/mbsgoat-sub000/internal/infrastructure/logx"

	"go.uber.org/zap"
)

const signatureHeader = "Stripe-Signature"

type Server struct {
	snapshots *application.SnapshotService
	billing   *application.BillingService
	ping      func(ctx context.Context) error
	timeout   time.Duration
}

func NewServer(snapshots *application.SnapshotService, billing *application.BillingService) *Server {
	return &Server{snapshots: snapshots, billing: billing}
}

// SetReadyCheck sets the dependency probe behind /readyz.
func (s *Server) SetReadyCheck(ping func(ctx context.Context) error) { s.ping = ping }

// SetRequestTimeout bounds the store and provider calls of one request.
func (s *Server) SetRequestTimeout(d time.Duration) { s.timeout = d }

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(r.Context(), s.timeout)
	}
	return context.WithCancel(r.Context())
}

type errorBody struct {
	Error string `json:"error"`
}

type checkoutRequest struct {
	Email string `json:"email"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

type webhookResponse struct {
	Received bool `json:"received"`
}

// snapshot adapts one fetch-and-normalize call to the read endpoint
// contract: 200 with the payload, 404 when the backing document is absent,
// 500 for anything else.
func snapshot[T any](s *Server, name string, fetch func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := s.requestContext(r)
		defer cancel()
		log := logx.WithFields(ctx).With(zap.String("snapshot", name))
		out, err := fetch(ctx)
		if err != nil {
			if errors.Is(err, application.ErrNotFound) {
				log.Warn("snapshot.not_found", zap.Error(err))
				writeError(w, http.StatusNotFound, name+" data not found")
				return
			}
			log.Error("snapshot.failed", zap.Error(err))
			internalError(w)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) Dashboard() http.HandlerFunc {
	return snapshot(s, "dashboard", s.snapshots.Dashboard)
}

func (s *Server) MBS() http.HandlerFunc {
	return snapshot(s, "mbs", s.snapshots.MBS)
}

func (s *Server) Treasuries() http.HandlerFunc {
	return snapshot(s, "treasuries", s.snapshots.Treasuries)
}

func (s *Server) MortgageRates() http.HandlerFunc {
	return snapshot(s, "mortgage rates", s.snapshots.MortgageRates)
}

func (s *Server) Indicators() http.HandlerFunc {
	return snapshot(s, "indicators", s.snapshots.Indicators)
}

func (s *Server) Stocks() http.HandlerFunc {
	return snapshot(s, "stocks", s.snapshots.Stocks)
}

func (s *Server) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	log := logx.WithFields(r.Context())
	var body checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, "invalid JSON body")
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	url, err := s.billing.CreateCheckout(ctx, body.Email)
	if err != nil {
		if errors.Is(err, application.ErrBadRequest) {
			badRequest(w, "email is required")
			return
		}
		log.Error("checkout.create_failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Info("checkout.created")
	writeJSON(w, http.StatusOK, checkoutResponse{URL: url})
}

func (s *Server) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	log := logx.WithFields(r.Context())
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, infraconfig.DefaultWebhookMaxBody))
	if err != nil {
		badRequest(w, "unreadable body")
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	ev, outcome, err := s.billing.HandleWebhook(ctx, payload, r.Header.Get(signatureHeader))
	if err != nil {
		if errors.Is(err, application.ErrInvalidSignature) {
			log.Warn("webhook.rejected", zap.Error(err))
			badRequest(w, "invalid signature")
			return
		}
		log.Error("webhook.failed", zap.String("event_id", ev.ID), zap.String("event_type", ev.Type), zap.Error(err))
		internalError(w)
		return
	}
	log.Info("webhook."+string(outcome),
		zap.String("event_id", ev.ID),
		zap.String("event_type", ev.Type),
		zap.Bool("has_email", strings.TrimSpace(ev.Email) != ""),
	)
	writeJSON(w, http.StatusOK, webhookResponse{Received: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}

func internalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "internal server error")
}
