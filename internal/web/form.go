package web

import (
	_ "embed"
	"html/template"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hydration-helper/internal/ics"
	"hydration-helper/internal/intake"
	appLog "hydration-helper/internal/log"
	"hydration-helper/internal/metrics"
	"hydration-helper/internal/model"
)

//go:embed form.html
var formHTML string

var formTmpl = template.Must(template.New("form").Parse(formHTML))

// Form field defaults shown on first load.
const (
	defaultAge          = 30
	defaultActivity     = 50
	defaultHeightFeet   = 5
	defaultHeightInches = 7
	defaultWeightLb     = 154
)

// formPage is the template payload for the calculator page.
type formPage struct {
	Age           int
	ActivityLevel int
	HeightFeet    int
	HeightInches  int
	WeightLb      float64

	HasResult bool
	Result    formResult

	Version string
}

// formResult is the rendered outcome of one computation.
type formResult struct {
	Liters    int
	Breakdown model.Breakdown

	// DataURI is typed template.URL so html/template keeps the data:
	// scheme in the download href instead of sanitizing it away.
	DataURI template.URL
	ICSPath string
}

// handleForm renders the calculator page. With no query parameters it shows
// the form with defaults; after a /calc redirect the measurements arrive as
// query parameters and the result section is rendered too, so results live
// on a shareable URL.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}

	page := formPage{
		Age:           defaultAge,
		ActivityLevel: defaultActivity,
		HeightFeet:    defaultHeightFeet,
		HeightInches:  defaultHeightInches,
		WeightLb:      defaultWeightLb,
		Version:       s.version,
	}

	if r.URL.RawQuery != "" {
		m := measurementsFromValues(r.URL.Query())
		page.Age = m.Age
		page.ActivityLevel = m.ActivityLevel
		page.HeightFeet = m.HeightFeet
		page.HeightInches = m.HeightInches
		page.WeightLb = m.WeightLb

		b := intake.Explain(m)
		metrics.ComputationsTotal.WithLabelValues("form").Inc()
		metrics.ReminderExportsTotal.WithLabelValues("data_uri").Inc()

		page.HasResult = true
		page.Result = formResult{
			Liters:    b.Liters,
			Breakdown: b,
			DataURI:   template.URL(ics.Encode(b.Liters)),
			ICSPath:   "/reminder.ics?liters=" + strconv.Itoa(b.Liters),
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTmpl.Execute(w, page); err != nil {
		appLog.Error("form render failed", err)
	}
}

// handleCalc accepts the form POST and redirects to GET / with the
// measurements as query parameters.
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	m := measurementsFromValues(r.PostForm)

	q := url.Values{}
	q.Set("age", strconv.Itoa(m.Age))
	q.Set("activity", strconv.Itoa(m.ActivityLevel))
	q.Set("height_ft", strconv.Itoa(m.HeightFeet))
	q.Set("height_in", strconv.Itoa(m.HeightInches))
	q.Set("weight_lb", strconv.FormatFloat(m.WeightLb, 'f', -1, 64))

	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// measurementsFromValues parses form or query fields into Measurements,
// falling back to the page defaults and clamping out-of-range values the
// same way the form controls do.
func measurementsFromValues(v url.Values) model.Measurements {
	return model.Measurements{
		Age:           clampInt(parseIntDefault(v.Get("age"), defaultAge), 1, 150),
		ActivityLevel: clampInt(parseIntDefault(v.Get("activity"), defaultActivity), 0, 100),
		HeightFeet:    clampInt(parseIntDefault(v.Get("height_ft"), defaultHeightFeet), 0, 9),
		HeightInches:  clampInt(parseIntDefault(v.Get("height_in"), defaultHeightInches), 0, 11),
		WeightLb:      clampFloat(parseFloatDefault(v.Get("weight_lb"), defaultWeightLb), 0, 2000),
	}
}

func parseFloatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	// Tolerate a decimal comma.
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func clampFloat(f, lo, hi float64) float64 {
	if math.IsNaN(f) {
		return lo
	}
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
