package services

import (
	"context"
	"sync"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// fakeClock advances its own time by d on every After call.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration // overrides d when non-zero
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != 0 {
		d = c.step
	}
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

type presenterCall struct {
	method string
	kind   domain.SessionType
	frame  ports.Frame
	count  uint
}

type fakePresenter struct {
	calls    []presenterCall
	onRender func(ports.Frame)
}

func (p *fakePresenter) SessionStarting(t domain.SessionType, minutes int) {
	p.calls = append(p.calls, presenterCall{method: "starting", kind: t})
}

func (p *fakePresenter) Render(frame ports.Frame) {
	p.calls = append(p.calls, presenterCall{method: "render", kind: frame.Type, frame: frame})
	if p.onRender != nil {
		p.onRender(frame)
	}
}

func (p *fakePresenter) SessionCompleted(t domain.SessionType) {
	p.calls = append(p.calls, presenterCall{method: "completed", kind: t})
}

func (p *fakePresenter) Stopped(completed uint) {
	p.calls = append(p.calls, presenterCall{method: "stopped", count: completed})
}

func (p *fakePresenter) frames() []ports.Frame {
	var out []ports.Frame
	for _, c := range p.calls {
		if c.method == "render" {
			out = append(out, c.frame)
		}
	}
	return out
}

func (p *fakePresenter) count(method string) int {
	n := 0
	for _, c := range p.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

type fakeNotifier struct {
	events   []ports.Event
	onNotify func(ports.Event)
}

func (n *fakeNotifier) Notify(event ports.Event) {
	n.events = append(n.events, event)
	if n.onNotify != nil {
		n.onNotify(event)
	}
}

type runCall struct {
	kind    domain.SessionType
	minutes int
}

// scriptedRunner returns outcomes in order and Cancelled once exhausted.
type scriptedRunner struct {
	outcomes []domain.SessionOutcome
	err      error
	calls    []runCall
}

func (r *scriptedRunner) Run(ctx context.Context, kind domain.SessionType, minutes int) (domain.SessionOutcome, error) {
	r.calls = append(r.calls, runCall{kind: kind, minutes: minutes})
	if r.err != nil {
		return "", r.err
	}
	if len(r.outcomes) == 0 {
		return domain.SessionCancelled, nil
	}
	out := r.outcomes[0]
	r.outcomes = r.outcomes[1:]
	return out, nil
}
