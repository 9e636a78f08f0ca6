package navigation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/pkg/session"
)

type State int

const (
	Loading State = iota
	Unauthenticated
	ProfileIncomplete
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "LOADING"
	case Unauthenticated:
		return "UNAUTHENTICATED"
	case ProfileIncomplete:
		return "PROFILE_INCOMPLETE"
	case Ready:
		return "READY"
	default:
		return "UNKNOWN"
	}
}

// Event is the closed set of inputs driving the state machine. Exactly one
// concrete type per input; Next switches on the type.
type Event interface{ isNavigationEvent() }

// SessionResolved carries the result of the one-shot initial session fetch.
type SessionResolved struct{ Session *session.Session }

// SessionChanged carries a subsequent session change: sign-in, sign-out,
// or token refresh.
type SessionChanged struct{ Session *session.Session }

// ProfileChecked carries the result of fetching the profile_completed flag
// for the current session's user.
type ProfileChecked struct {
	Completed bool
	Err       error
}

// ProfileSaved marks a successful profile save. The save itself sets
// profile_completed, so no re-fetch follows.
type ProfileSaved struct{}

func (SessionResolved) isNavigationEvent() {}
func (SessionChanged) isNavigationEvent()  {}
func (ProfileChecked) isNavigationEvent()  {}
func (ProfileSaved) isNavigationEvent()    {}

// Next is the pure transition function. Unlisted (state, event) pairs keep
// the current state.
func Next(current State, ev Event) State {
	switch e := ev.(type) {
	case SessionResolved:
		if e.Session == nil {
			return Unauthenticated
		}
		// Session exists; stay in Loading until the profile check lands.
		return Loading
	case SessionChanged:
		if e.Session == nil {
			return Unauthenticated
		}
		if current == Unauthenticated {
			return Loading
		}
		return current
	case ProfileChecked:
		if current != Loading {
			return current
		}
		if e.Err == nil && e.Completed {
			return Ready
		}
		// A failed fetch lands in the same place as "no profile yet". The
		// user re-enters profile setup instead of seeing a distinct error.
		return ProfileIncomplete
	case ProfileSaved:
		if current == ProfileIncomplete {
			return Ready
		}
		return current
	default:
		return current
	}
}

// ProfileChecker reports whether the given user's profile is completed.
type ProfileChecker func(ctx context.Context, userId uuid.UUID) (bool, error)

// Controller subscribes to the session store and folds session changes and
// profile checks into a single navigation state.
type Controller struct {
	store   *session.Store
	checker ProfileChecker
	logger  logger.ILogger

	mu      sync.RWMutex
	state   State
	unsub   func()
	cancel  context.CancelFunc
	baseCtx context.Context
}

func NewController(store *session.Store, checker ProfileChecker, l logger.ILogger) *Controller {
	return &Controller{
		store:   store,
		checker: checker,
		logger:  l,
		state:   Loading,
	}
}

// Start resolves the initial session and subscribes to changes. In-flight
// profile checks are cancelled when ctx is cancelled or Stop is called.
func (c *Controller) Start(ctx context.Context) {
	c.baseCtx, c.cancel = context.WithCancel(ctx)

	c.unsub = c.store.Subscribe(func(s *session.Session) {
		c.apply(SessionChanged{Session: s})
		if s != nil && c.Current() == Loading {
			c.checkProfile(s.UserID)
		}
	})

	initial := c.store.Current()
	c.apply(SessionResolved{Session: initial})
	if initial != nil {
		c.checkProfile(initial.UserID)
	}
}

// Stop unsubscribes from the session store and cancels any in-flight
// profile check. Late check results are dropped by the cancelled context.
func (c *Controller) Stop() {
	if c.unsub != nil {
		c.unsub()
	}
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Controller) Current() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// NotifyProfileSaved advances ProfileIncomplete to Ready after a
// successful save.
func (c *Controller) NotifyProfileSaved() {
	c.apply(ProfileSaved{})
}

func (c *Controller) apply(ev Event) {
	c.mu.Lock()
	prev := c.state
	c.state = Next(prev, ev)
	next := c.state
	c.mu.Unlock()

	if prev != next && c.logger != nil {
		c.logger.Info("Navigation", "state transition", map[string]interface{}{
			"from": prev.String(),
			"to":   next.String(),
		})
	}
}

func (c *Controller) checkProfile(userId uuid.UUID) {
	completed, err := c.checker(c.baseCtx, userId)
	if c.baseCtx.Err() != nil {
		return
	}
	if err != nil && c.logger != nil {
		c.logger.Warn("Navigation", "profile check failed, treating profile as incomplete", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
	c.apply(ProfileChecked{Completed: completed, Err: err})
}
