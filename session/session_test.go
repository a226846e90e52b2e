package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-analysis/client"
	"risk-analysis/models"
)

type fakeAnalyzer struct {
	mu     sync.Mutex
	calls  int
	result *models.Result
	err    error

	// when set, Analyze signals entered and blocks until release
	entered chan struct{}
	release chan struct{}
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, ticker string) (*models.Result, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}

	return f.result, f.err
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func sampleResult() *models.Result {
	return &models.Result{
		Metrics:  []models.Metric{{Name: "volatility", Value: "0.23"}},
		Analysis: models.Analysis{RiskCategory: "High"},
		Plot:     "iVBORw0KG",
	}
}

func TestAnalyze_BlankTicker(t *testing.T) {
	tests := []struct {
		name   string
		ticker string
	}{
		{name: "empty", ticker: ""},
		{name: "spaces", ticker: "   "},
		{name: "tabs and newline", ticker: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAnalyzer{result: sampleResult()}
			s := New(fake)
			s.SetTicker(tt.ticker)

			state := s.Analyze(context.Background())

			assert.Equal(t, ValidationMessage, state.Error)
			assert.False(t, state.Loading)
			assert.Nil(t, state.Analysis)
			assert.Equal(t, 0, fake.callCount(), "no request may be made for a blank ticker")
		})
	}
}

func TestAnalyze_Success(t *testing.T) {
	fake := &fakeAnalyzer{result: sampleResult()}
	s := New(fake)
	s.SetTicker("RELIANCE.NS")

	state := s.Analyze(context.Background())

	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
	require.NotNil(t, state.Analysis)
	assert.Equal(t, "High", state.Analysis.Analysis.RiskCategory)
	assert.Equal(t, 1, fake.callCount())
}

func TestAnalyze_FailureKeepsStaleAnalysis(t *testing.T) {
	fake := &fakeAnalyzer{result: sampleResult()}
	s := New(fake)
	s.SetTicker("RELIANCE.NS")
	s.Analyze(context.Background())

	// Second attempt fails: the error shows up, the old result stays
	fake.result = nil
	fake.err = &client.APIError{Message: "Ticker not found"}
	s.SetTicker("NOPE")
	state := s.Analyze(context.Background())

	assert.Equal(t, "Ticker not found", state.Error)
	require.NotNil(t, state.Analysis)
	assert.Equal(t, "High", state.Analysis.Analysis.RiskCategory)
}

func TestAnalyze_ErrorClearedOnNewAttempt(t *testing.T) {
	fake := &fakeAnalyzer{err: &client.APIError{Message: "Ticker not found"}}
	s := New(fake)
	s.SetTicker("NOPE")
	state := s.Analyze(context.Background())
	require.Equal(t, "Ticker not found", state.Error)

	fake.err = nil
	fake.result = sampleResult()
	s.SetTicker("RELIANCE.NS")
	state = s.Analyze(context.Background())

	assert.Empty(t, state.Error)
	require.NotNil(t, state.Analysis)
}

func TestAnalyze_UnexpectedErrorFallsBack(t *testing.T) {
	fake := &fakeAnalyzer{err: errors.New("plain failure")}
	s := New(fake)
	s.SetTicker("AAPL")

	state := s.Analyze(context.Background())

	assert.Equal(t, client.FallbackMessage, state.Error)
}

func TestAnalyze_LoadingWindow(t *testing.T) {
	fake := &fakeAnalyzer{
		result:  sampleResult(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := New(fake)
	s.SetTicker("RELIANCE.NS")

	assert.False(t, s.Snapshot().Loading, "idle before dispatch")

	done := make(chan State, 1)
	go func() {
		done <- s.Analyze(context.Background())
	}()

	<-fake.entered
	assert.True(t, s.Snapshot().Loading, "loading while the request is in flight")

	close(fake.release)
	state := <-done

	assert.False(t, state.Loading, "idle again after settlement")
	assert.False(t, s.Snapshot().Loading)
}

func TestAnalyze_Idempotent(t *testing.T) {
	fake := &fakeAnalyzer{result: sampleResult()}
	s := New(fake)
	s.SetTicker("RELIANCE.NS")

	first := s.Analyze(context.Background())
	second := s.Analyze(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 2, fake.callCount())
}
