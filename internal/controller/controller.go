// Package controller implements the record synchronization protocol shared
// by every module page: fetch-on-open with date normalization, create/update/
// delete against the backend with re-fetch reconciliation, the derived
// search view and CSV export. One Controller instance serves one module; the
// TUI owns none of this state.
//
// The source systems this replaces mixed two reconciliation strategies
// (patch-in-place from the mutation echo vs. full re-fetch); this
// implementation re-fetches after every successful mutation so the local
// list can never drift from the backend.
package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"idms/internal/fields"
	"idms/internal/modules"
	"idms/internal/record"
)

// State is the synchronization state of a module's local list.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Errored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "error"
	default:
		return "unknown"
	}
}

// API is the slice of the backend gateway the controller needs.
type API interface {
	List(ctx context.Context, collection string) ([]record.Record, error)
	Create(ctx context.Context, collection string, payload map[string]any) (record.Record, error)
	Update(ctx context.Context, collection, id string, payload map[string]any) (record.Record, error)
	Delete(ctx context.Context, collection, id string) error
}

// Controller owns the authoritative local list for one module.
type Controller struct {
	def modules.Definition
	api API
	log *zap.Logger

	mu    sync.Mutex
	state State
	list  []record.Record
	err   string

	// generation guards against stale async results: a result is committed
	// only if no newer load superseded it while the call was in flight.
	generation uint64
	cancel     context.CancelFunc
}

// New builds a controller for one module definition.
func New(def modules.Definition, api API, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		def: def,
		api: api,
		log: log.With(zap.String("module", def.Key)),
	}
}

// Definition returns the module configuration this controller serves.
func (c *Controller) Definition() modules.Definition { return c.def }

// State returns the current synchronization state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the message of the last failed load, or "".
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Records returns a copy of the authoritative list.
func (c *Controller) Records() []record.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]record.Record, len(c.list))
	copy(out, c.list)
	return out
}

// Filtered returns the derived search view: records whose searchable fields
// contain term, case-insensitively. The authoritative list is untouched.
func (c *Controller) Filtered(term string) []record.Record {
	return record.Filter(c.Records(), term, c.def.Searchable)
}

// Find returns the record with the given id, if present.
func (c *Controller) Find(id string) (record.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.list {
		if r.ID() == id {
			return r.Clone(), true
		}
	}
	return nil, false
}

// Load fetches the collection, normalizes tuple-encoded dates exactly once
// and commits the result as the authoritative list. A load that was
// superseded by a newer one (or by Reset) is discarded without touching
// state. A failed load leaves the previous list in place.
func (c *Controller) Load(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.state = Loading
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	recs, err := c.api.List(ctx, c.def.Collection)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		c.log.Debug("discarding stale load result", zap.Uint64("generation", gen))
		return nil
	}
	if err != nil {
		c.state = Errored
		c.err = err.Error()
		c.log.Warn("load failed", zap.Error(err))
		return err
	}
	for _, r := range recs {
		record.NormalizeDates(r, c.def.DateFields)
	}
	c.list = recs
	c.state = Loaded
	c.err = ""
	c.log.Debug("loaded", zap.Int("records", len(recs)))
	return nil
}

// Reset cancels any in-flight load and clears the local state, as when the
// user navigates away from the page. Navigating back starts from zero.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	c.state = Idle
	c.list = nil
	c.err = ""
}

// Create submits a new record built from the draft, then re-fetches the
// collection. The draft is validated and coerced first; a validation error
// aborts before any network call.
func (c *Controller) Create(ctx context.Context, draft fields.Draft) error {
	payload, err := c.buildPayload(draft)
	if err != nil {
		return err
	}
	if _, err := c.api.Create(ctx, c.def.Collection, payload); err != nil {
		c.log.Warn("create failed", zap.Error(err))
		return err
	}
	return c.Load(ctx)
}

// Update replaces the record with the given id, then re-fetches.
func (c *Controller) Update(ctx context.Context, id string, draft fields.Draft) error {
	payload, err := c.buildPayload(draft)
	if err != nil {
		return err
	}
	if _, err := c.api.Update(ctx, c.def.Collection, id, payload); err != nil {
		c.log.Warn("update failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return c.Load(ctx)
}

// Delete removes the record with the given id, then re-fetches. The caller
// is responsible for having confirmed the action with the user first.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, c.def.Collection, id); err != nil {
		c.log.Warn("delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return c.Load(ctx)
}

// ExportCSV serializes the current full local list, not the filtered
// view, using the module's export layout.
func (c *Controller) ExportCSV() (string, error) {
	return record.ExportCSV(c.Records(), c.def.CSVHeader, c.def.CSVFields)
}

// buildPayload turns the string-typed draft into the backend payload:
// module validation, numeric coercion for number fields, then the module's
// client-to-server attribute renames.
func (c *Controller) buildPayload(draft fields.Draft) (fields.Draft, error) {
	if c.def.Validate != nil {
		if err := c.def.Validate(draft); err != nil {
			return nil, err
		}
	}
	out := draft.WithoutID()
	for _, name := range c.def.NumberFields {
		v, ok := out[name]
		if !ok {
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			out[name] = 0
			continue
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number", name)
		}
		out[name] = n
	}
	return c.def.RenamePayload(out), nil
}
