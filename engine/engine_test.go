package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parrotlabs/parley/core"
	"github.com/parrotlabs/parley/internal/testutil"
)

func TestAskPicksHighestConfidence(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "weak",
		Eligible:    true,
		Response:    core.NewResponse("weak answer", 0.3),
	})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "strong",
		Eligible:    true,
		Response:    core.NewResponse("strong answer", 0.9),
	})

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "strong answer", resp.Text)
	assert.Equal(t, 0.9, resp.Confidence)
}

func TestAskTieBreakLastRegisteredWins(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "first",
		Eligible:    true,
		Response:    core.NewResponse("first answer", 0.7),
	})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "second",
		Eligible:    true,
		Response:    core.NewResponse("second answer", 0.7),
	})

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "second answer", resp.Text)
}

func TestAskNoAdaptersReturnsNil(t *testing.T) {
	eng := New()
	sink := &testutil.RecordingSink{}
	eng.RegisterOutputSink(sink)

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, sink.Handled(), "nothing should be dispatched without a winner")
}

func TestAskIneligibleAdaptersAreSkipped(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "ineligible",
		Eligible:    false,
		Response:    core.NewResponse("should not appear", 1.0),
	})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "fallback",
		Eligible:    true,
		Response:    core.NewResponse("fallback answer", 0.1),
	})

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "fallback answer", resp.Text)
}

func TestAskIsolatesAdapterErrors(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "broken-eligibility",
		Eligible:    true,
		CanErr:      errors.New("eligibility exploded"),
		Response:    core.NewResponse("never", 1.0),
	})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "broken-process",
		Eligible:    true,
		ProcErr:     errors.New("processing exploded"),
		Response:    core.NewResponse("never either", 1.0),
	})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "healthy",
		Eligible:    true,
		Response:    core.NewResponse("survived", 0.2),
	})

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "survived", resp.Text)
}

func TestAskRecoversAdapterPanic(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "panicky",
		Eligible:    true,
		Panic:       "boom",
	})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		AdapterName: "healthy",
		Eligible:    true,
		Response:    core.NewResponse("still here", 0.2),
	})

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "still here", resp.Text)
}

func TestAskDispatchesToAllSinks(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		Eligible: true,
		Response: core.NewResponse("broadcast", 0.8),
	})

	first := &testutil.RecordingSink{}
	second := &testutil.RecordingSink{}
	eng.RegisterOutputSink(first)
	eng.RegisterOutputSink(second)

	_, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)

	require.Len(t, first.Handled(), 1)
	require.Len(t, second.Handled(), 1)
	assert.Equal(t, "broadcast", first.Handled()[0].Text)
}

func TestAskSinkErrorDoesNotAbortDispatch(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		Eligible: true,
		Response: core.NewResponse("broadcast", 0.8),
	})

	failing := &testutil.RecordingSink{Err: errors.New("delivery failed")}
	healthy := &testutil.RecordingSink{}
	eng.RegisterOutputSink(failing)
	eng.RegisterOutputSink(healthy)

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err, "sink failures are logged, not returned")
	require.NotNil(t, resp)
	assert.Len(t, healthy.Handled(), 1)
}

func TestAskConcurrentDispatch(t *testing.T) {
	eng := New(func(o *Options) {
		o.Config.ConcurrentDispatch = true
	})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		Eligible: true,
		Response: core.NewResponse("broadcast", 0.8),
	})

	sinks := []*testutil.RecordingSink{{}, {}, {}}
	for _, s := range sinks {
		eng.RegisterOutputSink(s)
	}

	_, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)

	for _, s := range sinks {
		assert.Len(t, s.Handled(), 1)
	}
}

type sessionWriter struct{}

func (sessionWriter) Name() string { return "session-writer" }

func (sessionWriter) Process(_ context.Context, utterance string, session *core.Session) error {
	session.Set("last_utterance", utterance)
	return nil
}

func TestSessionPersistsAcrossTurns(t *testing.T) {
	eng := New()
	eng.RegisterPreProcessor(sessionWriter{})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		Eligible: true,
		Response: core.NewResponse("ok", 0.5),
	})

	_, err := eng.Ask(context.Background(), "first turn")
	require.NoError(t, err)
	_, err = eng.Ask(context.Background(), "second turn")
	require.NoError(t, err)

	snapshot := eng.Session()
	assert.Equal(t, "second turn", snapshot["last_utterance"])
}

func TestResetSessionStartsFresh(t *testing.T) {
	eng := New()
	eng.RegisterPreProcessor(sessionWriter{})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		Eligible: true,
		Response: core.NewResponse("ok", 0.5),
	})

	_, err := eng.Ask(context.Background(), "remember me")
	require.NoError(t, err)
	require.NotEmpty(t, eng.Session())

	before := eng.SessionID()
	eng.ResetSession()

	assert.Empty(t, eng.Session())
	assert.NotEqual(t, before, eng.SessionID())
}

type panickyPreProcessor struct{}

func (panickyPreProcessor) Name() string { return "panicky" }

func (panickyPreProcessor) Process(_ context.Context, _ string, _ *core.Session) error {
	panic("pre-processor boom")
}

func TestAskIsolatesPreProcessorPanic(t *testing.T) {
	eng := New()
	eng.RegisterPreProcessor(panickyPreProcessor{})
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		Eligible: true,
		Response: core.NewResponse("unaffected", 0.5),
	})

	resp, err := eng.Ask(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "unaffected", resp.Text)
}

func TestAskHonorsCancelledContext(t *testing.T) {
	eng := New()
	eng.RegisterLogicAdapter(&testutil.StaticAdapter{
		Eligible: true,
		Response: core.NewResponse("never", 0.5),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Ask(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}
