package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hydration-helper/internal/config"
	"hydration-helper/internal/ics"
	"hydration-helper/internal/intake"
	appLog "hydration-helper/internal/log"
	"hydration-helper/internal/metrics"
	"hydration-helper/internal/model"
)

// Server provides the calculator web form and the HTTP APIs for intake
// computation and reminder export. It holds no per-user state: every
// request carries its own measurements and every response is derived
// fresh from them.
type Server struct {
	cfg      *config.Config
	version  string
	mux      *http.ServeMux
	validate *validator.Validate
}

// NewServer constructs a new Server.
func NewServer(cfg *config.Config, version string) *Server {
	s := &Server{
		cfg:      cfg,
		version:  version,
		mux:      http.NewServeMux(),
		validate: validator.New(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the composed http.Handler for this server: request
// metrics outermost, then basic auth when configured, then the mux.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		h = s.basicAuthMiddleware(h)
	}
	return s.metricsMiddleware(h)
}

// basicAuthEnabled reports whether HTTP Basic Auth is configured.
func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	// An empty username or password counts as disabled.
	if s.cfg.BasicAuth.Username == "" || s.cfg.BasicAuth.Password == "" {
		return false
	}
	return true
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// /health stays reachable for probes without credentials.
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="hydration-helper", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// statusRecorder captures the response status code for request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware observes per-request latency. The route set is small
// and fixed, so the raw path is safe as a label.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rec, r)
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).
			Observe(time.Since(started).Seconds())
	})
}

// StartServer runs an HTTP server bound to cfg.Listen until ctx is
// canceled, then shuts it down gracefully with a 10 second grace period.
func StartServer(ctx context.Context, cfg *config.Config, version string) error {
	s := NewServer(cfg, version)

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+cfg.Listen, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("HTTP server shutdown failed", err)
		return err
	}
	appLog.Info("HTTP server stopped")
	return <-errCh
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/intake", s.handleIntake)
	s.mux.HandleFunc("/api/reminders", s.handleReminders)
	s.mux.HandleFunc("/reminder.ics", s.handleReminderICS)
	s.mux.Handle("/metrics", promhttp.Handler())
	s.mux.HandleFunc("/calc", s.handleCalc)
	s.mux.HandleFunc("/", s.handleForm)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// intakeRequest is the JSON request shape for POST /api/intake. Bounds
// mirror the form controls; the computation itself accepts anything.
type intakeRequest struct {
	Age           int     `json:"age" validate:"gte=0,lte=150"`
	ActivityLevel int     `json:"activity_level" validate:"gte=0,lte=100"`
	HeightFeet    int     `json:"height_feet" validate:"gte=0,lte=9"`
	HeightInches  int     `json:"height_inches" validate:"gte=0,lte=11"`
	WeightLb      float64 `json:"weight_lb" validate:"gte=0,lte=2000"`
}

// intakeResponse is the JSON response shape for POST /api/intake.
type intakeResponse struct {
	Liters    int             `json:"liters"`
	Breakdown model.Breakdown `json:"breakdown"`
	Reminder  reminderLinks   `json:"reminder"`
}

// reminderLinks points a client at both reminder encodings for the
// computed target.
type reminderLinks struct {
	DataURI string `json:"data_uri"`
	ICSPath string `json:"ics_path"`
}

// handleIntake computes the recommendation for a JSON measurement payload.
//
// POST /api/intake
//
//	{"age": 30, "activity_level": 50, "height_feet": 5,
//	 "height_inches": 7, "weight_lb": 154}
func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	var req intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid measurements: "+err.Error())
		return
	}

	b := intake.Explain(model.Measurements{
		Age:           req.Age,
		ActivityLevel: req.ActivityLevel,
		HeightFeet:    req.HeightFeet,
		HeightInches:  req.HeightInches,
		WeightLb:      req.WeightLb,
	})
	metrics.ComputationsTotal.WithLabelValues("api").Inc()
	// The response carries the encoded data: URI, so it counts as an export
	// the same way the form page does.
	metrics.ReminderExportsTotal.WithLabelValues("data_uri").Inc()
	appLog.Debug("api intake computed", "liters", b.Liters, "raw_liters", b.RawLiters)

	writeJSON(w, http.StatusOK, intakeResponse{
		Liters:    b.Liters,
		Breakdown: b,
		Reminder: reminderLinks{
			DataURI: ics.Encode(b.Liters),
			ICSPath: "/reminder.ics?liters=" + strconv.Itoa(b.Liters),
		},
	})
}

// remindersResponse is the JSON response shape for /api/reminders.
type remindersResponse struct {
	Summary     string      `json:"summary"`
	RRule       string      `json:"rrule"`
	StartClock  string      `json:"start_clock"`
	WindowHours int         `json:"window_hours"`
	Timezone    string      `json:"timezone"`
	Upcoming    []time.Time `json:"upcoming"`
}

// handleReminders previews the configured reminder schedule.
//
// GET /api/reminders?liters=3&count=5
//   - liters: target announced in the summary (default 2)
//   - count:  how many upcoming times to include (default 5)
func (s *Server) handleReminders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}

	q := r.URL.Query()
	liters := parseIntDefault(q.Get("liters"), 2)
	count := parseIntDefault(q.Get("count"), 5)

	loc := s.cfg.Location()
	ev := s.configuredReminder(liters)

	times, err := ics.Upcoming(ev, ics.UpcomingConfig{Location: loc, Count: count})
	if err != nil {
		appLog.Error("api reminders: expansion failed", err, "rrule", ev.RRule)
		writeError(w, http.StatusInternalServerError, "failed to expand reminders")
		return
	}

	writeJSON(w, http.StatusOK, remindersResponse{
		Summary:     ev.Summary,
		RRule:       ev.RRule,
		StartClock:  s.cfg.Reminder.Start,
		WindowHours: s.cfg.Reminder.WindowHours,
		Timezone:    loc.String(),
		Upcoming:    times,
	})
}

// configuredReminder builds the reminder event for liters with the clock
// and rule taken from config instead of the fixed defaults.
func (s *Server) configuredReminder(liters int) model.ReminderEvent {
	ev := ics.NewReminderEvent(liters)
	if hour, minute, err := ics.ParseClock(s.cfg.Reminder.Start); err == nil {
		ev.StartClock = ics.CompactClock(hour, minute)
	}
	if s.cfg.Reminder.RRule != "" {
		ev.RRule = s.cfg.Reminder.RRule
	}
	return ev
}

// handleReminderICS serves a complete RFC 5545 calendar for the given liter
// target as a download.
//
// GET /reminder.ics?liters=3
func (s *Server) handleReminderICS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	liters := parseIntDefault(r.URL.Query().Get("liters"), 2)

	opts, err := ics.WindowOptions(
		s.cfg.Reminder.Start,
		s.cfg.Reminder.WindowHours,
		s.cfg.Reminder.RRule,
		s.cfg.Location(),
	)
	if err != nil {
		// Normalize guards the clock format, so this path is unexpected.
		appLog.Error("reminder.ics: bad reminder window", err, "start", s.cfg.Reminder.Start)
		opts = ics.ExportOptions{}
	}

	cal := ics.BuildCalendar(liters, opts)
	metrics.ReminderExportsTotal.WithLabelValues("ics").Inc()

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="water-reminder.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		appLog.Error("reminder.ics: response write failed", err)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
