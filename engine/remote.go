package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hex/game"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var _ Input = (*RemoteAgent)(nil)

// RemoteAgent asks a move server for every move of its seat.
type RemoteAgent struct {
	URL      string
	Rules    string
	InARow   int
	Strategy string
	Depth    int
	Client   *http.Client
}

type remoteRequest struct {
	Rules    string   `json:"rules"`
	InARow   int      `json:"in_a_row"`
	Board    []string `json:"board"`
	Player   int      `json:"player"`
	Strategy string   `json:"strategy"`
	Depth    int      `json:"depth"`
}

type remoteResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewRemoteAgent(url, rules string, inARow int, strategy string, depth int) *RemoteAgent {
	return &RemoteAgent{
		URL:      strings.TrimRight(url, "/"),
		Rules:    rules,
		InARow:   inARow,
		Strategy: strategy,
		Depth:    depth,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ReadMove posts the board to <URL>/move and returns the decoded move if it is
// one of legal.
func (a *RemoteAgent) ReadMove(board *game.Board, player game.Player, legal []game.Move) (game.Move, error) {
	body, err := json.Marshal(remoteRequest{
		Rules:    a.Rules,
		InARow:   a.InARow,
		Board:    board.Lines(),
		Player:   int(player),
		Strategy: a.Strategy,
		Depth:    a.Depth,
	})
	if err != nil {
		return game.NoMove, err
	}

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Post(a.URL+"/move", "application/json", bytes.NewReader(body))
	if err != nil {
		return game.NoMove, fmt.Errorf("failed to reach agent at %s: %w", a.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.NoMove, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(out)))
	}

	var decoded remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return game.NoMove, fmt.Errorf("failed to decode agent response: %w", err)
	}
	move := game.Move{Row: decoded.Row, Col: decoded.Col}
	if !slices.Contains(legal, move) {
		return game.NoMove, fmt.Errorf("agent at %s returned illegal move %s", a.URL, move)
	}

	log.Debug().Msgf("agent at %s chose %s for %s", a.URL, move, player)
	return move, nil
}
