package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"risk-analysis/client"
	"risk-analysis/models"
)

// ValidationMessage is shown for a blank ticker; no request is made.
const ValidationMessage = "Please enter a stock ticker."

// Analyzer is what Session needs from the analysis client.
type Analyzer interface {
	Analyze(ctx context.Context, ticker string) (*models.Result, error)
}

// State is the whole UI state: the ticker text, the last successful
// result, the last error and the in-flight flag. A failed call leaves
// Analysis untouched, so a stale result can sit next to a fresh error.
type State struct {
	Ticker   string
	Analysis *models.Result
	Error    string
	Loading  bool
}

// Session owns the state and the one analyze action. The mutex guards
// snapshot reads and writes only; it is not held across the network
// call, so overlapping calls are possible and the last one to settle
// wins.
type Session struct {
	mu     sync.Mutex
	state  State
	client Analyzer
}

func New(client Analyzer) *Session {
	return &Session{client: client}
}

func (s *Session) SetTicker(ticker string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Ticker = ticker
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Analyze runs the single action of the UI: validate the ticker, call
// the service, fold the outcome back into the state. Returns the state
// as it stands after settlement.
func (s *Session) Analyze(ctx context.Context) State {
	s.mu.Lock()
	ticker := s.state.Ticker

	if strings.TrimSpace(ticker) == "" {
		s.state.Error = ValidationMessage
		state := s.state
		s.mu.Unlock()
		return state
	}

	s.state.Error = ""
	s.state.Loading = true
	s.mu.Unlock()

	result, err := s.client.Analyze(ctx, ticker)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state.Error = errorMessage(err)
	} else {
		s.state.Analysis = result
	}
	s.state.Loading = false

	return s.state
}

func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return client.FallbackMessage
}
