package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vitrina/internal/browser"
)

const initialLoadTimeout = 30 * time.Second

// session pairs one browsing UI instance with its idle clock.
type session struct {
	b        *browser.Browser
	lastSeen time.Time
}

// sessionStore is the in-memory session registry. Idle sessions are
// evicted by a background sweeper so abandoned tabs don't pin memory.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
	done     chan struct{}
}

func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	s := &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]*session),
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *sessionStore) sweep() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.lastSeen.Before(cutoff) {
					sess.b.Stop()
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

func (s *sessionStore) add(b *browser.Browser) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{b: b, lastSeen: time.Now()}
	s.mu.Unlock()
	return id
}

// get returns the session's browser and refreshes its idle clock,
// nil when the session is unknown or already evicted.
func (s *sessionStore) get(id string) *browser.Browser {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	sess.lastSeen = time.Now()
	return sess.b
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) incrementFailures() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, sess := range s.sessions {
		total += sess.b.IncrementFailures()
	}
	return total
}

func (s *sessionStore) stop() {
	close(s.done)
	s.mu.Lock()
	for id, sess := range s.sessions {
		sess.b.Stop()
		delete(s.sessions, id)
	}
	s.mu.Unlock()
}

// -------------------- handlers --------------------

type createSessionResponse struct {
	SessionID string `json:"session_id"`
}

//	@Summary		Start a browsing session
//	@Description	Creates a session and kicks off the initial catalog load in the background.
//	@Tags			Sessions
//	@Produce		json
//	@Success		201	{object}	createSessionResponse	"Session created"
//	@Failure		500	{object}	error					"Internal server error"
//	@Router			/sessions [post]
func (app *application) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	b, err := browser.New(browser.Deps{
		Source:      app.source,
		Logger:      app.logger,
		SettleDelay: app.config.catalog.settleDelay,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	id := app.sessions.add(b)

	// The load is asynchronous: the session is usable right away and the
	// view carries load_error if the fetch fails.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
		defer cancel()
		b.Reload(ctx)
	}()

	app.logger.Infow("session created", "session_id", id)

	if err := app.jsonResponse(w, http.StatusCreated, createSessionResponse{SessionID: id}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) sessionFromRequest(w http.ResponseWriter, r *http.Request) *browser.Browser {
	id := chi.URLParam(r, "sessionID")
	b := app.sessions.get(id)
	if b == nil {
		app.notFoundResponse(w, r, fmt.Errorf("session %q not found", id))
		return nil
	}
	return b
}

//	@Summary		Current view-model
//	@Description	Returns the filtered grid, sections, category counts and selection state.
//	@Tags			Sessions
//	@Produce		json
//	@Param			sessionID		path		string	true	"Session ID"
//	@Param			category_filter	query		string	false	"Substring filter over category names"
//	@Success		200				{object}	browser.View
//	@Failure		404				{object}	error	"Session not found"
//	@Router			/sessions/{sessionID}/view [get]
func (app *application) getViewHandler(w http.ResponseWriter, r *http.Request) {
	b := app.sessionFromRequest(w, r)
	if b == nil {
		return
	}

	view := b.View(r.URL.Query().Get("category_filter"))
	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

//	@Summary		Reload the catalog
//	@Description	Re-fetches the collection. On failure the prior collection stays browsable.
//	@Tags			Sessions
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Success		200			{object}	browser.View
//	@Failure		404			{object}	error	"Session not found"
//	@Router			/sessions/{sessionID}/reload [post]
func (app *application) reloadSessionHandler(w http.ResponseWriter, r *http.Request) {
	b := app.sessionFromRequest(w, r)
	if b == nil {
		return
	}

	// Load failures are part of the view-model, not an HTTP failure.
	b.Reload(r.Context())

	if err := app.jsonResponse(w, http.StatusOK, b.View("")); err != nil {
		app.internalServerError(w, r, err)
	}
}

type searchPayload struct {
	Search string `json:"search" validate:"max=200"`
}

//	@Summary		Set search text
//	@Description	Applies after the debounce settle delay; rapid keystrokes collapse into one re-filter.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			sessionID	path		string			true	"Session ID"
//	@Param			payload		body		searchPayload	true	"Search text"
//	@Success		202			{object}	map[string]string
//	@Failure		400			{object}	error	"Invalid payload"
//	@Failure		404			{object}	error	"Session not found"
//	@Router			/sessions/{sessionID}/search [put]
func (app *application) setSearchHandler(w http.ResponseWriter, r *http.Request) {
	b := app.sessionFromRequest(w, r)
	if b == nil {
		return
	}

	var payload searchPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	b.SetSearch(payload.Search)

	if err := app.jsonResponse(w, http.StatusAccepted, map[string]string{"status": "settling"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

//	@Summary		Toggle a required category
//	@Description	Adds or removes one category from the AND-filter; applies immediately.
//	@Tags			Sessions
//	@Produce		json
//	@Param			sessionID	path		string	true	"Session ID"
//	@Param			name		path		string	true	"Category label"
//	@Success		200			{object}	browser.View
//	@Failure		404			{object}	error	"Session not found"
//	@Router			/sessions/{sessionID}/categories/{name} [put]
func (app *application) toggleCategoryHandler(w http.ResponseWriter, r *http.Request) {
	b := app.sessionFromRequest(w, r)
	if b == nil {
		return
	}

	b.ToggleCategory(chi.URLParam(r, "name"))

	if err := app.jsonResponse(w, http.StatusOK, b.View("")); err != nil {
		app.internalServerError(w, r, err)
	}
}
