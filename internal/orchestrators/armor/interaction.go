package armor

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/interaction"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/pkg/clock"
)

// session is the live editor of one draft. The controller keeps hover, selection, popup and
// drag state between requests; the draft it reads is swapped in for each event.
type session struct {
	controller *interaction.Controller
	document   *interaction.Document
	draft      *mech.ArmorDraft
	lastUsed   time.Time
}

func (s *session) Armor(loc mech.Location) (mech.LocationArmor, int) {
	return s.draft.Allocation[loc], budget.MaxArmorForLocation(loc, s.draft.Mass)
}

func (s *session) onChange(loc mech.Location, change mech.ArmorChange) {
	applyChange(s.draft, loc, change)
}

type sessions struct {
	mu    sync.Mutex
	byID  map[string]*session
	clock clock.Clock
	idle  time.Duration
}

func newSessions(clk clock.Clock, idle time.Duration) *sessions {
	return &sessions{
		byID:  make(map[string]*session),
		clock: clk,
		idle:  idle,
	}
}

func (s *sessions) get(draftID string) (*session, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now, draftID)

	if sess, ok := s.byID[draftID]; ok {
		sess.lastUsed = now
		return sess, nil
	}

	sess := &session{document: interaction.NewDocument(), lastUsed: now}
	controller, err := interaction.NewController(&interaction.Config{
		Source:   sess,
		OnChange: sess.onChange,
		Document: sess.document,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create interaction controller")
	}
	sess.controller = controller
	s.byID[draftID] = sess

	return sess, nil
}

// sweep closes sessions idle for longer than the timeout, keeping the one being fetched.
// Drafts behind them have usually expired from the store already. Expects s.mu held.
func (s *sessions) sweep(now time.Time, keep string) {
	for id, sess := range s.byID {
		if id == keep || now.Sub(sess.lastUsed) <= s.idle {
			continue
		}
		delete(s.byID, id)
		sess.controller.Close()
	}
}

func (s *sessions) open() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *sessions) close(draftID string) {
	s.mu.Lock()
	sess, ok := s.byID[draftID]
	delete(s.byID, draftID)
	s.mu.Unlock()

	if ok {
		sess.controller.Close()
	}
}

// Interact routes one editor event into the draft's interaction session. Changes the event
// produces are applied, recorded and saved like any other edit.
func (o *orchestrator) Interact(ctx context.Context, input *InteractInput) (*InteractOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Event == nil {
		return nil, errors.InvalidArgument("event is required")
	}
	if err := input.Event.Validate(); err != nil {
		return nil, err
	}

	var sess *session
	state, changed, err := o.mutate(ctx, input.DraftID, opInteract, func(draft *mech.ArmorDraft, _ *mech.ArmorType) error {
		var err error
		if sess, err = o.sessions.get(draft.ID); err != nil {
			return err
		}

		sess.draft = draft
		defer func() { sess.draft = nil }()

		return sess.controller.Dispatch(input.Event)
	})
	if err != nil {
		return nil, err
	}

	return &InteractOutput{
		State:       state,
		Interaction: interactionState(sess.controller),
		Changed:     changed,
	}, nil
}

func interactionState(c *interaction.Controller) *InteractionState {
	out := &InteractionState{
		Dragging: c.Dragging(),
		States:   make(map[mech.Location]interaction.State, len(mech.Locations)),
	}
	if loc, ok := c.Selected(); ok {
		out.Selected = loc
	}
	if loc, ok := c.Hovered(); ok {
		out.Hovered = loc
	}
	if loc, ok := c.Editing(); ok {
		out.Editing = loc
		out.EditFront, out.EditRear = c.EditBuffer()
	}
	for _, loc := range mech.Locations {
		out.States[loc] = c.State(loc)
	}
	return out
}
