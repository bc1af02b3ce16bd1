// Package contact implements the contact form: its field state, the single
// outbound send on submit, and the success banner.
package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/logging"
)

// SuccessMessage is the banner text shown after a successful send.
const SuccessMessage = "Message Sent Successfully!"

// Sender delivers one submission to the mail provider.
type Sender interface {
	Send(ctx context.Context, s Submission) error
}

// FailureReporter receives delivery failures for the developer diagnostics view.
type FailureReporter interface {
	ReportFailure(ctx context.Context, operation string, err error)
}

type State int

const (
	StateIdle State = iota
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type Options struct {
	BannerDuration   time.Duration
	RestartHideTimer bool
	AfterFunc        AfterFunc
	Reporter         FailureReporter
}

// Flow is one mounted contact form.
//
// Submit does not guard against a second call while one is in flight; both
// are sent.
type Flow struct {
	sender   Sender
	logger   *zap.Logger
	reporter FailureReporter
	banner   *Banner

	mu    sync.Mutex
	sub   Submission
	state State
}

func NewFlow(sender Sender, logger *zap.Logger, opts Options) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{
		sender:   sender,
		logger:   logger,
		reporter: opts.Reporter,
		banner:   NewBanner(opts.BannerDuration, opts.RestartHideTimer, opts.AfterFunc),
		state:    StateIdle,
	}
}

// UpdateField replaces one field and leaves the others alone.
func (f *Flow) UpdateField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := f.sub.With(field, value)
	if err != nil {
		return err
	}
	f.sub = next
	if f.state != StateSubmitting {
		f.state = StateEditing
	}
	return nil
}

// Submit validates the current fields and sends them once.
//
// Invalid input never reaches the sender and leaves the flow in Editing. On success the fields are cleared
// and the banner is shown; on failure the fields are kept, the error is
// logged and reported, and nothing is shown to the visitor.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	sub := f.sub
	if err := sub.Validate(); err != nil {
		f.state = StateEditing
		f.mu.Unlock()
		return err
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	err := f.sender.Send(ctx, sub)
	if err != nil {
		if !errors.Is(err, ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		}
		f.logger.Error("contact submission delivery failed",
			append(logging.Fields(ctx), zap.String("operation", "contact.submit"), zap.Error(err))...)
		if f.reporter != nil {
			f.reporter.ReportFailure(ctx, "contact.submit", err)
		}

		f.mu.Lock()
		f.state = StateEditing
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.sub = Submission{}
	f.state = StateIdle
	f.mu.Unlock()

	f.banner.Show()
	f.logger.Info("contact submission delivered", logging.Fields(ctx)...)
	return nil
}

func (f *Flow) Snapshot() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sub
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) BannerVisible() bool {
	return f.banner.Visible()
}

func (f *Flow) Banner() *Banner {
	return f.banner
}

// Close stops pending banner timers. Call it when the form is torn down.
func (f *Flow) Close() {
	f.banner.Stop()
}
