package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Zachkp/portfolio/internal/logging"
)

type fakeSender struct {
	mu    sync.Mutex
	err   error
	calls []Submission
}

func (s *fakeSender) Send(ctx context.Context, sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, sub)
	return s.err
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type fakeTimer struct {
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type scheduled struct {
	d     time.Duration
	f     func()
	timer *fakeTimer
}

type fakeClock struct {
	mu    sync.Mutex
	calls []scheduled
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{}
	c.calls = append(c.calls, scheduled{d: d, f: f, timer: t})
	return t
}

func (c *fakeClock) fire(i int) {
	c.mu.Lock()
	s := c.calls[i]
	c.mu.Unlock()
	if !s.timer.stopped {
		s.f()
	}
}

type fakeReporter struct {
	ops  []string
	errs []error
}

func (r *fakeReporter) ReportFailure(ctx context.Context, operation string, err error) {
	r.ops = append(r.ops, operation)
	r.errs = append(r.errs, err)
}

func fill(t *testing.T, f *Flow, name, email, message string) {
	t.Helper()
	require.NoError(t, f.UpdateField(FieldName, name))
	require.NoError(t, f.UpdateField(FieldEmail, email))
	require.NoError(t, f.UpdateField(FieldMessage, message))
}

func TestFlowStartsEmpty(t *testing.T) {
	f := NewFlow(&fakeSender{}, nil, Options{})
	assert.True(t, f.Snapshot().IsEmpty())
	assert.Equal(t, StateIdle, f.State())
	assert.False(t, f.BannerVisible())
}

func TestUpdateFieldTouchesOneField(t *testing.T) {
	f := NewFlow(&fakeSender{}, nil, Options{})

	require.NoError(t, f.UpdateField(FieldName, "Jane"))
	assert.Equal(t, Submission{Name: "Jane"}, f.Snapshot())
	assert.Equal(t, StateEditing, f.State())

	require.NoError(t, f.UpdateField(FieldMessage, "Hi"))
	assert.Equal(t, Submission{Name: "Jane", Message: "Hi"}, f.Snapshot())

	err := f.UpdateField(Field("phone"), "555")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, Submission{Name: "Jane", Message: "Hi"}, f.Snapshot())
}

func TestSubmitSuccess(t *testing.T) {
	sender := &fakeSender{}
	clock := &fakeClock{}
	f := NewFlow(sender, nil, Options{AfterFunc: clock.AfterFunc})

	fill(t, f, "Jane Doe", "jane@example.com", "Hello")
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, sender.calls, 1)
	assert.Equal(t, Submission{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello"}, sender.calls[0])

	assert.Equal(t, Submission{}, f.Snapshot())
	assert.Equal(t, StateIdle, f.State())
	assert.True(t, f.BannerVisible())

	require.Len(t, clock.calls, 1)
	assert.Equal(t, 5000*time.Millisecond, clock.calls[0].d)

	clock.fire(0)
	assert.False(t, f.BannerVisible())
}

func TestSubmitSuccessRealTimer(t *testing.T) {
	f := NewFlow(&fakeSender{}, nil, Options{BannerDuration: 50 * time.Millisecond})
	fill(t, f, "Jane Doe", "jane@example.com", "Hello")

	start := time.Now()
	require.NoError(t, f.Submit(context.Background()))
	assert.True(t, f.BannerVisible())

	require.Eventually(t, func() bool { return !f.BannerVisible() }, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestSubmitFailureRetainsFields(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	sender := &fakeSender{err: errors.New("connection refused")}
	reporter := &fakeReporter{}
	clock := &fakeClock{}
	f := NewFlow(sender, zap.New(core), Options{AfterFunc: clock.AfterFunc, Reporter: reporter})

	fill(t, f, "Jane Doe", "jane@example.com", "Hello")
	before := f.Snapshot()

	ctx := logging.WithRequestID(context.Background(), "req-1")
	err := f.Submit(ctx)
	require.ErrorIs(t, err, ErrDeliveryFailed)

	assert.Equal(t, before, f.Snapshot())
	assert.Equal(t, StateEditing, f.State())
	assert.False(t, f.BannerVisible())
	assert.Empty(t, clock.calls)
	assert.Equal(t, 1, sender.count())

	entries := logs.FilterMessage("contact submission delivery failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "contact.submit", fields["operation"])

	require.Len(t, reporter.ops, 1)
	assert.Equal(t, "contact.submit", reporter.ops[0])
	assert.ErrorIs(t, reporter.errs[0], ErrDeliveryFailed)
}

func TestSubmitFailureThenResubmit(t *testing.T) {
	sender := &fakeSender{err: errors.New("503")}
	f := NewFlow(sender, nil, Options{AfterFunc: (&fakeClock{}).AfterFunc})
	fill(t, f, "Jane Doe", "jane@example.com", "Hello")

	require.Error(t, f.Submit(context.Background()))

	sender.err = nil
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, 2, sender.count())
	assert.True(t, f.Snapshot().IsEmpty())
}

func TestSubmitInvalidMakesNoCall(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
	}{
		{name: "empty email", sub: Submission{Name: "Jane Doe", Message: "Hello"}},
		{name: "bad email", sub: Submission{Name: "Jane Doe", Email: "jane-at-example", Message: "Hello"}},
		{name: "empty name", sub: Submission{Email: "jane@example.com", Message: "Hello"}},
		{name: "empty message", sub: Submission{Name: "Jane Doe", Email: "jane@example.com"}},
		{name: "all empty", sub: Submission{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			f := NewFlow(sender, nil, Options{})
			fill(t, f, tt.sub.Name, tt.sub.Email, tt.sub.Message)

			err := f.Submit(context.Background())
			require.ErrorIs(t, err, ErrInvalidSubmission)
			assert.Equal(t, 0, sender.count())
			assert.Equal(t, tt.sub, f.Snapshot())
			assert.Equal(t, StateEditing, f.State())
			assert.False(t, f.BannerVisible())
		})
	}
}

func TestSubmitInvalidFromIdleReturnsToEditing(t *testing.T) {
	f := NewFlow(&fakeSender{}, nil, Options{})
	require.Equal(t, StateIdle, f.State())

	require.ErrorIs(t, f.Submit(context.Background()), ErrInvalidSubmission)
	assert.Equal(t, StateEditing, f.State())
}

func TestOverlappingSuccessesRaceHideTimers(t *testing.T) {
	clock := &fakeClock{}
	f := NewFlow(&fakeSender{}, nil, Options{AfterFunc: clock.AfterFunc})

	fill(t, f, "Jane Doe", "jane@example.com", "Hello")
	require.NoError(t, f.Submit(context.Background()))
	fill(t, f, "Jane Doe", "jane@example.com", "Again")
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, clock.calls, 2)
	assert.Equal(t, 2, f.Banner().Pending())

	// the first timer hides the banner the second submission showed
	clock.fire(0)
	assert.False(t, f.BannerVisible())
	assert.Equal(t, 1, f.Banner().Pending())
}

func TestRestartHideTimer(t *testing.T) {
	clock := &fakeClock{}
	f := NewFlow(&fakeSender{}, nil, Options{AfterFunc: clock.AfterFunc, RestartHideTimer: true})

	fill(t, f, "Jane Doe", "jane@example.com", "Hello")
	require.NoError(t, f.Submit(context.Background()))
	fill(t, f, "Jane Doe", "jane@example.com", "Again")
	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, clock.calls, 2)
	assert.True(t, clock.calls[0].timer.stopped)

	clock.fire(0)
	assert.True(t, f.BannerVisible())
	clock.fire(1)
	assert.False(t, f.BannerVisible())
}

func TestConcurrentSubmitsAreNotDeduplicated(t *testing.T) {
	block := make(chan struct{})
	sender := &blockingSender{release: block}
	f := NewFlow(sender, nil, Options{AfterFunc: (&fakeClock{}).AfterFunc})
	fill(t, f, "Jane Doe", "jane@example.com", "Hello")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.Submit(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return sender.started() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, StateSubmitting, f.State())
	close(block)
	wg.Wait()

	assert.True(t, f.Snapshot().IsEmpty())
}

type blockingSender struct {
	release chan struct{}
	mu      sync.Mutex
	n       int
}

func (s *blockingSender) Send(ctx context.Context, sub Submission) error {
	s.mu.Lock()
	s.n++
	s.mu.Unlock()
	<-s.release
	return nil
}

func (s *blockingSender) started() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

func TestCloseStopsPendingTimers(t *testing.T) {
	clock := &fakeClock{}
	f := NewFlow(&fakeSender{}, nil, Options{AfterFunc: clock.AfterFunc})
	fill(t, f, "Jane Doe", "jane@example.com", "Hello")
	require.NoError(t, f.Submit(context.Background()))

	f.Close()
	assert.True(t, clock.calls[0].timer.stopped)
	assert.Equal(t, 0, f.Banner().Pending())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "unknown", State(42).String())
}
