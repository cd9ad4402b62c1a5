package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nihongo-drills/katsuyo"
	"github.com/nihongo-drills/katsuyo/internal/drill"
	"github.com/nihongo-drills/katsuyo/internal/observability"
)

// ---- JSON response types ------------------------------------------------

type verbJSON struct {
	Name       string `json:"name"`
	ID         int    `json:"id"`
	Class      string `json:"class"`
	Dictionary string `json:"dictionary"`
	Gloss      string `json:"gloss"`
}

type cellJSON struct {
	Form    string `json:"form"`
	Surface string `json:"surface"`
	Gloss   string `json:"gloss"`
}

type conjugateResponse struct {
	Verb verbJSON `json:"verb"`
	cellJSON
}

type tableResponse struct {
	Verb  verbJSON   `json:"verb"`
	Cells []cellJSON `json:"cells"`
}

type analysisJSON struct {
	Verb  verbJSON `json:"verb"`
	Form  string   `json:"form"`
	Gloss string   `json:"gloss"`
}

type analyzeResponse struct {
	Surface  string         `json:"surface"`
	Analyses []analysisJSON `json:"analyses"`
}

type formsResponse struct {
	Forms []string `json:"forms"`
}

type verbsResponse struct {
	Verbs []verbJSON `json:"verbs"`
}

type challengeResponse struct {
	ID         string `json:"id"`
	Prompt     string `json:"prompt"`
	Dictionary string `json:"dictionary"`
	Form       string `json:"form"`
}

type answerResponse struct {
	ID       string `json:"id"`
	Correct  bool   `json:"correct"`
	Given    string `json:"given"`
	Expected string `json:"expected"`
}

type attemptJSON struct {
	ChallengeID string    `json:"challenge_id"`
	Verb        string    `json:"verb"`
	Form        string    `json:"form"`
	Given       string    `json:"given"`
	Expected    string    `json:"expected"`
	Correct     bool      `json:"correct"`
	AnsweredAt  time.Time `json:"answered_at"`
}

type recentResponse struct {
	Attempts []attemptJSON `json:"attempts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toVerbJSON(v katsuyo.Verb) verbJSON {
	return verbJSON{
		Name:       v.Name(),
		ID:         v.ID,
		Class:      v.Class.String(),
		Dictionary: v.Dictionary,
		Gloss:      v.Gloss,
	}
}

func toCellJSON(c katsuyo.Cell) cellJSON {
	return cellJSON{Form: c.Form.Name(), Surface: c.Surface, Gloss: c.Gloss}
}

// server carries the state shared by the handlers.
type server struct {
	lex     *katsuyo.Lexicon
	drills  *drill.Registry
	history *drill.History
	metrics *observability.Metrics
	logger  *observability.Logger
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// lookupVerb resolves the "verb" query parameter, writing an error response on failure.
func (s *server) lookupVerb(w http.ResponseWriter, r *http.Request) (katsuyo.Verb, bool) {
	key := r.URL.Query().Get("verb")
	if key == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
		return katsuyo.Verb{}, false
	}
	v, ok := s.lex.Verb(key)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("verb %q not found", key))
		return katsuyo.Verb{}, false
	}
	return v, true
}

// formFromQuery reads either form=<name> or the individual axis
// parameters; missing axes default to present, plain, affirmative, immediate.
func formFromQuery(r *http.Request) (katsuyo.Form, error) {
	q := r.URL.Query()
	if name := q.Get("form"); name != "" {
		return katsuyo.ParseForm(name)
	}
	var (
		f   katsuyo.Form
		err error
	)
	if s := q.Get("tense"); s != "" {
		if f.Tense, err = katsuyo.ParseTense(s); err != nil {
			return f, err
		}
	}
	if s := q.Get("register"); s != "" {
		if f.Register, err = katsuyo.ParseRegister(s); err != nil {
			return f, err
		}
	}
	if s := q.Get("polarity"); s != "" {
		if f.Polarity, err = katsuyo.ParsePolarity(s); err != nil {
			return f, err
		}
	}
	if s := q.Get("mode"); s != "" {
		if f.Mode, err = katsuyo.ParseMode(s); err != nil {
			return f, err
		}
	}
	return f, nil
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleConjugate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	v, ok := s.lookupVerb(w, r)
	if !ok {
		return
	}
	f, err := formFromQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.Conjugations.WithLabelValues(f.Name()).Inc()
	s.writeJSON(w, http.StatusOK, conjugateResponse{
		Verb:     toVerbJSON(v),
		cellJSON: cellJSON{Form: f.Name(), Surface: v.Conjugate(f), Gloss: v.Translate(f)},
	})
}

func (s *server) handleTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	v, ok := s.lookupVerb(w, r)
	if !ok {
		return
	}
	table := katsuyo.InflectionTable(v)
	cells := make([]cellJSON, 0, len(table.Cells))
	for _, c := range table.Cells {
		cells = append(cells, toCellJSON(c))
	}
	s.writeJSON(w, http.StatusOK, tableResponse{Verb: toVerbJSON(v), Cells: cells})
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	surface := r.URL.Query().Get("surface")
	if surface == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'surface' query parameter")
		return
	}
	analyses := s.lex.Analyze(surface)
	out := make([]analysisJSON, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, analysisJSON{Verb: toVerbJSON(a.Verb), Form: a.Form.Name(), Gloss: a.Gloss})
	}
	status := http.StatusOK
	if len(out) == 0 {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, analyzeResponse{Surface: surface, Analyses: out})
}

func (s *server) handleForms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	forms := katsuyo.AllForms()
	names := make([]string, 0, len(forms))
	for _, f := range forms {
		names = append(names, f.Name())
	}
	s.writeJSON(w, http.StatusOK, formsResponse{Forms: names})
}

func (s *server) handleVerbs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	verbs := s.lex.Verbs()
	if dict := r.URL.Query().Get("dictionary"); dict != "" {
		verbs = s.lex.Find(dict)
	}
	out := make([]verbJSON, 0, len(verbs))
	for _, v := range verbs {
		out = append(out, toVerbJSON(v))
	}
	s.writeJSON(w, http.StatusOK, verbsResponse{Verbs: out})
}

func (s *server) handleNewChallenge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	c := s.drills.New()
	s.metrics.OpenChallenges.Set(float64(s.drills.Open()))
	s.logger.Debug("challenge issued", map[string]interface{}{
		"id":   c.ID.String(),
		"verb": c.Verb.Name(),
		"form": c.Form.Name(),
	})
	s.writeJSON(w, http.StatusCreated, challengeResponse{
		ID:         c.ID.String(),
		Prompt:     c.Prompt,
		Dictionary: c.Verb.Dictionary,
		Form:       c.Form.Name(),
	})
}

func (s *server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed challenge id")
		return
	}
	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Answer == "" {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'answer' field")
		return
	}

	res, err := s.drills.Check(r.Context(), id, body.Answer)
	s.metrics.OpenChallenges.Set(float64(s.drills.Open()))
	switch {
	case errors.Is(err, drill.ErrUnknownChallenge):
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("challenge %s not found", id))
		return
	case err != nil:
		// The answer was checked; only the history write failed.
		s.logger.Error("record attempt", err, map[string]interface{}{"id": id.String()})
	}

	outcome := "incorrect"
	if res.Correct {
		outcome = "correct"
	}
	s.metrics.DrillAnswers.WithLabelValues(outcome).Inc()
	s.writeJSON(w, http.StatusOK, answerResponse{
		ID:       id.String(),
		Correct:  res.Correct,
		Given:    res.Given,
		Expected: res.Challenge.Answer,
	})
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	st, err := s.history.Stats(r.Context())
	if err != nil {
		s.logger.Error("drill stats", err)
		s.writeError(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, st)
}

// defaultRecent and maxRecent bound GET /api/drill/recent.
const (
	defaultRecent = 20
	maxRecent     = 500
)

func (s *server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	limit := defaultRecent
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "'limit' must be a positive integer")
			return
		}
		limit = min(n, maxRecent)
	}
	attempts, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		s.logger.Error("recent attempts", err)
		s.writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	out := make([]attemptJSON, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, attemptJSON{
			ChallengeID: a.ChallengeID,
			Verb:        a.Verb,
			Form:        a.Form,
			Given:       a.Given,
			Expected:    a.Expected,
			Correct:     a.Correct,
			AnsweredAt:  a.AnsweredAt,
		})
	}
	s.writeJSON(w, http.StatusOK, recentResponse{Attempts: out})
}

// routes builds the API mux, instrumenting each route.
func (s *server) routes(metricsPath string) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern, route string, h http.HandlerFunc) {
		mux.Handle(pattern, s.metrics.Instrument(route, h))
	}
	handle("/api/conjugate", "conjugate", s.handleConjugate)
	handle("/api/table", "table", s.handleTable)
	handle("/api/analyze", "analyze", s.handleAnalyze)
	handle("/api/forms", "forms", s.handleForms)
	handle("/api/verbs", "verbs", s.handleVerbs)
	handle("/api/drill", "drill", s.handleNewChallenge)
	handle("/api/drill/stats", "drill_stats", s.handleStats)
	handle("/api/drill/recent", "drill_recent", s.handleRecent)
	handle("/api/drill/{id}/answer", "drill_answer", s.handleAnswer)
	mux.Handle(metricsPath, s.metrics.Handler())
	return mux
}
