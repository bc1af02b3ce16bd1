package contact

import (
	"sync"
	"time"
)

// DefaultBannerDuration is how long the success banner stays up.
const DefaultBannerDuration = 5 * time.Second

// Timer is the part of *time.Timer the banner needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it through an adapter.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Banner is the transient success indicator.
//
// Every Show schedules its own hide timer. Unless restart is set, earlier
// timers keep running, so two quick successes can hide the banner before the
// second one's full duration has passed.
type Banner struct {
	mu       sync.Mutex
	visible  bool
	duration time.Duration
	restart  bool
	after    AfterFunc
	nextID   uint64
	pending  map[uint64]Timer
}

func NewBanner(duration time.Duration, restart bool, after AfterFunc) *Banner {
	if duration <= 0 {
		duration = DefaultBannerDuration
	}
	if after == nil {
		after = realAfterFunc
	}
	return &Banner{
		duration: duration,
		restart:  restart,
		after:    after,
		pending:  make(map[uint64]Timer),
	}
}

func (b *Banner) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.restart {
		b.stopLocked()
	}

	b.visible = true
	b.nextID++
	id := b.nextID
	b.pending[id] = b.after(b.duration, func() { b.hide(id) })
}

func (b *Banner) hide(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.pending[id]; !ok {
		return
	}
	delete(b.pending, id)
	b.visible = false
}

func (b *Banner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *Banner) Duration() time.Duration {
	return b.duration
}

// Pending reports how many hide timers have not fired yet.
func (b *Banner) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Stop cancels every pending hide timer without changing visibility.
func (b *Banner) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

func (b *Banner) stopLocked() {
	for id, t := range b.pending {
		t.Stop()
		delete(b.pending, id)
	}
}
