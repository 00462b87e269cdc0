package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ganttcal/pkg/calendar"
	"github.com/matzehuels/ganttcal/pkg/errors"
	"github.com/matzehuels/ganttcal/pkg/observability"
	"github.com/matzehuels/ganttcal/pkg/pipeline"
)

const (
	defaultAddr     = ":8080"
	requestIDHeader = "X-Request-ID"
	maxBodyBytes    = 1 << 20
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calendar headers over HTTP",
		Long: `Serve calendar headers over HTTP.

Endpoints:
  GET  /healthz          liveness check
  GET  /v1/header.svg    header as SVG (options as query parameters)
  GET  /v1/header.json   header plan as JSON (options as query parameters)
  POST /v1/layout        header plan for a JSON options body

Query parameters use the config file keys, e.g.
  /v1/header.svg?start=2024-01-29&end=2024-03-01&mode=week&direction=rtl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the server and shuts it down when ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(runner, c.Logger).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	printSuccess("Listening on %s", StyleLink.Render("http://"+displayAddr(addr)))
	c.Logger.Info("server started", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

// =============================================================================
// Server
// =============================================================================

// server holds the HTTP handlers. The runner is shared by all requests.
type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, logger *log.Logger) *server {
	return &server{runner: runner, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(s.handleNotFound)
	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/header.svg", s.handleHeader(pipeline.FormatSVG, "image/svg+xml"))
		r.Get("/header.json", s.handleHeader(pipeline.FormatJSON, "application/json"))
		r.Post("/layout", s.handleLayout)
	})
	return r
}

// =============================================================================
// Middleware
// =============================================================================

type requestIDKey struct{}

// requestID tags each request with the caller's X-Request-ID or a new UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// observe reports every request to the HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		id := requestIDFrom(r.Context())
		hooks.OnRequest(r.Context(), id, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), id, r.Method, r.URL.Path, status, time.Since(start))
	})
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleHeader runs the full pipeline for one format.
func (s *server) handleHeader(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := optionsFromQuery(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Formats = []string{format}

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
	}
}

func (s *server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

type layoutResponse struct {
	Ticks  []string      `json:"ticks"`
	Cached bool          `json:"cached"`
	Plan   calendar.Plan `json:"plan"`
}

// handleLayout computes the plan for a JSON options body.
func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	opts, err := pipeline.ParseConfig(body, ".json")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ticks, err := s.runner.Seed(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	plan, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), ticks, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := layoutResponse{Ticks: make([]string, len(ticks)), Cached: hit, Plan: plan}
	for i, t := range ticks {
		resp.Ticks[i] = t.Format(errors.DateLayout)
	}
	w.Header().Set("X-Cache", cacheStatus(hit))
	writeJSON(w, http.StatusOK, resp)
}

// optionsFromQuery maps query parameters onto pipeline options.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Start:        q.Get("start"),
		End:          q.Get("end"),
		Ticks:        splitList(q.Get("ticks")),
		Mode:         q.Get("mode"),
		Direction:    q.Get("direction"),
		Locale:       q.Get("locale"),
		Formatter:    q.Get("formatter"),
		MonthVariant: q.Get("month_variant"),
		WeekVariant:  q.Get("week_variant"),
		WeekBoundary: q.Get("week_boundary"),
		Style:        q.Get("style"),
		FontFamily:   q.Get("font_family"),
	}
	opts.Colors.Background = q.Get("background")
	opts.Colors.Separator = q.Get("separator")
	opts.Colors.TopText = q.Get("top_text")
	opts.Colors.BottomText = q.Get("bottom_text")

	floats := []struct {
		name string
		dst  *float64
	}{
		{"column_width", &opts.ColumnWidth},
		{"header_height", &opts.HeaderHeight},
		{"font_size", &opts.FontSize},
	}
	for _, f := range floats {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s %q", f.name, v)
		}
		*f.dst = n
	}
	return opts, nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError maps validation errors to 400, NOT_FOUND to 404, UNSUPPORTED
// to 501 and everything else to 500.
func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	id := requestIDFrom(r.Context())
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch {
	case errors.IsValidation(err), code == errors.ErrCodeFileNotFound:
		status = http.StatusBadRequest
	case code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case code == errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", id, "path", r.URL.Path, "error", err)
		msg = "internal error"
	}
	observability.HTTP().OnError(r.Context(), id, r.Method, r.URL.Path, err)
	writeJSON(w, status, errorResponse{Error: errorBody{Code: string(code), Message: msg, RequestID: id}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
