package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"
	"hex/strategy"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Defaults struct {
	Rules    string
	InARow   int
	Depth    int
	MaxDepth int // Deeper requests are rejected, meta.MAX_DEPTH when zero
}

type moveRequest struct {
	Rules    string   `json:"rules"`
	InARow   int      `json:"in_a_row"`
	Board    []string `json:"board"`
	Player   int      `json:"player"`
	Strategy string   `json:"strategy"`
	Depth    int      `json:"depth"`
}

type moveResponse struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Strategy string `json:"strategy"`
	Nodes    int    `json:"nodes"`
	Duration string `json:"duration"`
}

var errNoMoves = errors.New("position has no legal moves")

type handler struct {
	defaults Defaults
}

// NewRouter serves POST /move and GET /strategies.
func NewRouter(defaults Defaults) http.Handler {
	if defaults.MaxDepth <= 0 {
		defaults.MaxDepth = meta.MAX_DEPTH
	}
	h := handler{defaults: defaults}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(meta.MAX_BODY_BYTES))
	r.Use(requestLogger)
	r.Get("/strategies", h.handleStrategies)
	r.Post("/move", h.handleFindMove)
	return r
}

// Start listens on addr until the server fails.
func Start(addr string, defaults Defaults) error {
	log.Info().Msgf("starting move server on %s ...", addr)
	return http.ListenAndServe(addr, NewRouter(defaults))
}

func (h handler) handleStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, strategy.Names())
}

func (h handler) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.findMove(req)
	switch {
	case errors.Is(err, errNoMoves):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case err != nil:
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h handler) findMove(req moveRequest) (moveResponse, error) {
	rulesName, inARow, depth := req.Rules, req.InARow, req.Depth
	if rulesName == "" {
		rulesName = h.defaults.Rules
	}
	if inARow <= 0 {
		inARow = h.defaults.InARow
	}
	if depth <= 0 {
		depth = h.defaults.Depth
	}
	if depth > h.defaults.MaxDepth {
		return moveResponse{}, fmt.Errorf("depth %d exceeds the limit of %d", depth, h.defaults.MaxDepth)
	}

	rules, err := game.NewRules(rulesName, inARow)
	if err != nil {
		return moveResponse{}, err
	}
	board, err := game.ParseBoard(req.Board)
	if err != nil {
		return moveResponse{}, err
	}
	player := game.Player(req.Player)
	if !player.Valid() {
		return moveResponse{}, fmt.Errorf("player must be 1 or 2, got %d", req.Player)
	}
	kind, err := strategy.ParseKind(req.Strategy)
	if err != nil {
		return moveResponse{}, err
	}
	if kind.Interactive() {
		return moveResponse{}, fmt.Errorf("%s moves cannot be computed", kind)
	}
	if game.Winner(rules, board) != game.Empty || len(rules.PossibleMoves(board)) == 0 {
		return moveResponse{}, errNoMoves
	}

	collector := metrics.NewCollector()
	move := strategy.New(kind, rules, board, player, strategy.WithDepth(depth), strategy.WithMetrics(collector)).Start()
	metric := collector.Complete()

	return moveResponse{
		Row:      move.Row,
		Col:      move.Col,
		Strategy: kind.String(),
		Nodes:    metric.Nodes,
		Duration: metric.Duration.String(),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
