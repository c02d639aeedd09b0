package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"silzey-pos/internal/catalog"
	"silzey-pos/internal/domain"
	"silzey-pos/internal/journal"
)

const (
	DefaultSplashDelay   = 2 * time.Second
	DefaultThankYouDelay = 10 * time.Second
	recordTimeout        = 5 * time.Second
)

// Options configures a Runtime. Zero values fall back to defaults.
type Options struct {
	Generator     catalog.Generator
	PageSize      int
	SplashDelay   time.Duration
	ThankYouDelay time.Duration
	Scheduler     Scheduler
	Recorder      journal.Recorder
	Logger        zerolog.Logger
}

// command is one unit of work executed on the loop goroutine.
type command struct {
	run   func() error
	reply chan error
}

// Runtime owns the Session and applies clerk actions and timer firings one
// at a time on a single goroutine. Sessions are reset in place, and timers
// carry the generation they were scheduled in so a timer from an earlier
// session can never touch a later one.
type Runtime struct {
	sess          *Session
	sched         Scheduler
	recorder      journal.Recorder
	logger        zerolog.Logger
	splashDelay   time.Duration
	thankYouDelay time.Duration

	commands  chan command
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	recording sync.WaitGroup

	// loop-owned
	generation int
	timer      Timer
}

// NewRuntime starts a session on the splash screen and schedules the move to browsing.
func NewRuntime(opts Options) *Runtime {
	if opts.Generator == nil {
		opts.Generator = catalog.NewSource(0)
	}
	if opts.PageSize <= 0 {
		opts.PageSize = catalog.DefaultPageSize
	}
	if opts.SplashDelay <= 0 {
		opts.SplashDelay = DefaultSplashDelay
	}
	if opts.ThankYouDelay <= 0 {
		opts.ThankYouDelay = DefaultThankYouDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = ClockScheduler{}
	}
	if opts.Recorder == nil {
		opts.Recorder = journal.NewLog(opts.Logger)
	}

	r := &Runtime{
		sess:          New(opts.Generator, opts.PageSize),
		sched:         opts.Scheduler,
		recorder:      opts.Recorder,
		logger:        opts.Logger,
		splashDelay:   opts.SplashDelay,
		thankYouDelay: opts.ThankYouDelay,
		commands:      make(chan command),
		done:          make(chan struct{}),
		stopped:       make(chan struct{}),
	}
	r.schedule(r.splashDelay, r.leaveSplash)
	go r.loop()
	return r
}

func (r *Runtime) loop() {
	defer close(r.stopped)
	for {
		select {
		case cmd := <-r.commands:
			cmd.reply <- cmd.run()
		case <-r.done:
			return
		}
	}
}

// Close stops the loop and any pending timer, then waits for in-flight sale recording.
func (r *Runtime) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
		<-r.stopped
		r.generation++
		if r.timer != nil {
			r.timer.Stop()
			r.timer = nil
		}
		r.recording.Wait()
		r.logger.Debug().Msg("session runtime closed")
	})
}

func (r *Runtime) exec(ctx context.Context, run func() error) error {
	cmd := command{run: run, reply: make(chan error, 1)}
	select {
	case r.commands <- cmd:
	case <-r.done:
		return domain.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-cmd.reply
}

// schedule must run on the loop goroutine, or before it starts.
func (r *Runtime) schedule(d time.Duration, fire func()) {
	if r.timer != nil {
		r.timer.Stop()
	}
	gen := r.generation
	r.timer = r.sched.AfterFunc(d, func() {
		_ = r.exec(context.Background(), func() error {
			if gen != r.generation {
				return nil
			}
			r.timer = nil
			fire()
			return nil
		})
	})
}

func (r *Runtime) leaveSplash() {
	if r.sess.LeaveSplash() {
		r.logger.Debug().Msg("splash finished")
	}
}

func (r *Runtime) resetAfterThankYou() {
	r.generation++
	r.sess.Reset()
	r.logger.Info().Msg("session reset for next customer")
}

func (r *Runtime) record(sale domain.Sale) {
	r.recording.Add(1)
	go func() {
		defer r.recording.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.recorder.Record(ctx, sale); err != nil {
			r.logger.Error().Err(err).Str("sale_id", sale.ID).Msg("record sale")
		}
	}()
}

// View returns the current session projection.
func (r *Runtime) View(ctx context.Context) (View, error) {
	var v View
	err := r.exec(ctx, func() error {
		v = r.sess.Snapshot()
		return nil
	})
	return v, err
}

// Catalog returns the visible page of the active category.
func (r *Runtime) Catalog(ctx context.Context) (catalog.Page, error) {
	var page catalog.Page
	err := r.exec(ctx, func() error {
		var err error
		page, err = r.sess.VisibleProducts()
		return err
	})
	return page, err
}

// update runs a session mutation and returns the resulting projection.
// The projection is returned even when the mutation fails, since failures
// leave a message on the session.
func (r *Runtime) update(ctx context.Context, fn func(s *Session) error) (View, error) {
	var v View
	err := r.exec(ctx, func() error {
		err := fn(r.sess)
		v = r.sess.Snapshot()
		return err
	})
	return v, err
}

func (r *Runtime) SetCategory(ctx context.Context, category string) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.SetCategory(category) })
}

func (r *Runtime) SetTagFilter(ctx context.Context, tag string) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.SetTagFilter(tag) })
}

func (r *Runtime) SetSearchTerm(ctx context.Context, term string) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.SetSearchTerm(term) })
}

func (r *Runtime) SetSortOption(ctx context.Context, opt catalog.SortOption) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.SetSortOption(opt) })
}

func (r *Runtime) LoadMore(ctx context.Context) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.LoadMore() })
}

func (r *Runtime) SelectProduct(ctx context.Context, productID string) (View, error) {
	return r.update(ctx, func(s *Session) error {
		_, err := s.SelectProduct(productID)
		return err
	})
}

func (r *Runtime) ClearSelection(ctx context.Context) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.ClearSelection() })
}

func (r *Runtime) AddToCart(ctx context.Context, productID string) (View, error) {
	return r.update(ctx, func(s *Session) error {
		line, err := s.AddToCart(productID)
		if err == nil {
			r.logger.Debug().Str("product_id", productID).Int("quantity", line.Quantity).Msg("added to cart")
		}
		return err
	})
}

func (r *Runtime) RemoveFromCart(ctx context.Context, productID string) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.RemoveFromCart(productID) })
}

func (r *Runtime) AdjustQuantity(ctx context.Context, productID string, delta int) (View, error) {
	return r.update(ctx, func(s *Session) error {
		_, err := s.AdjustQuantity(productID, delta)
		return err
	})
}

func (r *Runtime) OpenCart(ctx context.Context) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.OpenCart() })
}

func (r *Runtime) CloseCart(ctx context.Context) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.CloseCart() })
}

func (r *Runtime) ProceedToCheckout(ctx context.Context) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.ProceedToCheckout() })
}

func (r *Runtime) UpdateDraft(ctx context.Context, draft domain.CheckoutDraft) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.UpdateDraft(draft) })
}

func (r *Runtime) CancelCheckout(ctx context.Context) (View, error) {
	return r.update(ctx, func(s *Session) error { return s.CancelCheckout() })
}

// FinalizeSale closes the sale, hands it to the journal and schedules the
// reset that follows the thank-you screen.
func (r *Runtime) FinalizeSale(ctx context.Context, draft domain.CheckoutDraft) (View, error) {
	return r.update(ctx, func(s *Session) error {
		sale, err := s.FinalizeSale(draft)
		if err != nil {
			return err
		}
		r.logger.Debug().
			Str("sale_id", sale.ID).
			Dur("reset_in", r.thankYouDelay).
			Msg("thank-you screen shown")
		r.record(sale)
		r.schedule(r.thankYouDelay, r.resetAfterThankYou)
		return nil
	})
}
