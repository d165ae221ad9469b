package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/withreach/gip-checkout/pkg/checkout"
	"github.com/withreach/gip-checkout/pkg/clientip"
	"github.com/withreach/gip-checkout/pkg/httpserver"
	"github.com/withreach/gip-checkout/pkg/logger"
	"github.com/withreach/gip-checkout/pkg/metrics"
	"github.com/withreach/gip-checkout/pkg/payload"
	"github.com/withreach/gip-checkout/pkg/requestid"
)

// DefaultMaxBodyBytes bounds request bodies when Config leaves it unset.
const DefaultMaxBodyBytes int64 = 1 << 20

type Config struct {
	// InferConsumerIP fills Consumer.IpAddress on /v1/orders from the
	// client address when the body leaves it out.
	InferConsumerIP bool  `env:"INFER_CONSUMER_IP" envDefault:"false"`
	MaxBodyBytes    int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

type handler struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics.Metrics
}

// New returns the service router. Validation metrics are registered on reg,
// which also backs /metrics.
func New(cfg Config, log *slog.Logger, reg *prometheus.Registry) http.Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	h := &handler{
		cfg:     cfg,
		log:     log.With(logger.Component("api")),
		metrics: metrics.New(reg),
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(h.log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/validate/{entity}", h.validate)
		r.Post("/orders", h.order)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Response{Error: &ErrorDetail{
			Code:    "not_found",
			Message: http.StatusText(http.StatusNotFound),
		}})
	})

	return r
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	v, err := checkout.Entity(entity)
	if err != nil {
		h.log.InfoContext(r.Context(), "unknown entity", logger.Entity(entity))
		writeError(w, err)
		return
	}
	h.serve(w, r, entity, v)
}

func (h *handler) order(w http.ResponseWriter, r *http.Request) {
	var opts []checkout.Option
	if h.cfg.InferConsumerIP {
		opts = append(opts, checkout.WithConsumerIP(clientip.FromContext(r.Context())))
	}
	v, err := checkout.Entity(checkout.EntityOrder, opts...)
	if err != nil {
		writeError(w, err)
		return
	}
	h.serve(w, r, checkout.EntityOrder, v)
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request, entity string, v checkout.Validator) {
	ctx := r.Context()

	body, err := decodeObject(w, r, h.cfg.MaxBodyBytes)
	if err != nil {
		h.log.InfoContext(ctx, "rejected request body", logger.Entity(entity), logger.Error(err))
		writeError(w, err)
		return
	}

	start := time.Now()
	out, err := v(body)
	elapsed := time.Since(start)
	h.metrics.Observe(entity, err, elapsed)

	if err != nil {
		h.log.InfoContext(ctx, "validation failed",
			logger.Entity(entity),
			logger.ValidationError(err),
			logger.Duration(elapsed),
		)
		writeError(w, err)
		return
	}

	if h.log.Enabled(ctx, slog.LevelDebug) {
		if o, ok := out.(payload.Object); ok {
			h.log.DebugContext(ctx, "validated", logger.Entity(entity), logger.Payload(o))
		}
	}
	writeData(w, out)
}
