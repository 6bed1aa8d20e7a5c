package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ebalint/taskdeck/internal/model"
	"github.com/ebalint/taskdeck/internal/store/kv"
)

// Storage keys. tasksKey holds the JSON-encoded task array, sortKey the
// last sort option the user picked.
const (
	tasksKey = "tasks"
	sortKey  = "sortOption"
)

// Persister round-trips the task collection across restarts. Failures stay
// behind this boundary: they are logged, the caller never sees them, and
// the in-memory collection remains the source of truth for the session.
type Persister interface {
	Save(tasks []model.Task)
	Load() []model.Task
	SaveSortOption(opt model.SortOption)
	LoadSortOption() (model.SortOption, bool)
}

// record is the wire shape of one task. CreatedAt travels as an RFC 3339
// string and Priority as its ordinal; both are long-lived format choices,
// so they are decoupled from the model types.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt"`
	// Pointer so records written before priority existed decode as
	// "absent" and default to medium.
	Priority *int `json:"priority,omitempty"`
}

// KVPersister stores the collection as a single value in a key-value
// store.
type KVPersister struct {
	kv kv.KV
}

func NewKVPersister(store kv.KV) *KVPersister {
	return &KVPersister{kv: store}
}

func encodeTasks(tasks []model.Task) (string, error) {
	recs := make([]record, 0, len(tasks))
	for _, t := range tasks {
		p := int(t.Priority)
		recs = append(recs, record{
			ID:          t.ID,
			Title:       t.Title,
			IsCompleted: t.Completed,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
			Priority:    &p,
		})
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

func decodeTasks(s string) ([]model.Task, error) {
	var recs []record
	if err := json.Unmarshal([]byte(s), &recs); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	tasks := make([]model.Task, 0, len(recs))
	for _, r := range recs {
		created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse createdAt %q: %w", r.CreatedAt, err)
		}
		p := model.PriorityMedium
		if r.Priority != nil && *r.Priority >= int(model.PriorityLow) && *r.Priority <= int(model.PriorityHigh) {
			p = model.Priority(*r.Priority)
		}
		tasks = append(tasks, model.Task{
			ID:        r.ID,
			Title:     r.Title,
			Completed: r.IsCompleted,
			CreatedAt: created,
			Priority:  p,
		})
	}
	return tasks, nil
}

// Save writes a full snapshot of the collection. A failed save leaves the
// previous snapshot in place, which is stale but well-formed.
func (p *KVPersister) Save(tasks []model.Task) {
	s, err := encodeTasks(tasks)
	if err != nil {
		slog.Error("encode tasks", "error", err)
		return
	}
	if err := p.kv.Set(tasksKey, s); err != nil {
		slog.Error("save tasks", "error", err, "count", len(tasks))
	}
}

// Load returns the persisted collection, or an empty one on first run and
// on any failure. Order is whatever the last save left it in; no re-sort
// happens here.
func (p *KVPersister) Load() []model.Task {
	s, ok, err := p.kv.Get(tasksKey)
	if err != nil {
		slog.Error("load tasks", "error", err)
		return []model.Task{}
	}
	if !ok {
		return []model.Task{}
	}
	tasks, err := decodeTasks(s)
	if err != nil {
		slog.Error("decode tasks", "error", err)
		return []model.Task{}
	}
	return tasks
}

func (p *KVPersister) SaveSortOption(opt model.SortOption) {
	if err := p.kv.Set(sortKey, opt.String()); err != nil {
		slog.Error("save sort option", "error", err, "option", opt.String())
	}
}

// LoadSortOption reports whether a preference was stored at all, so the
// caller can fall back to its configured default.
func (p *KVPersister) LoadSortOption() (model.SortOption, bool) {
	s, ok, err := p.kv.Get(sortKey)
	if err != nil {
		slog.Error("load sort option", "error", err)
		return model.SortByDateCreated, false
	}
	if !ok {
		return model.SortByDateCreated, false
	}
	opt, valid := model.ParseSortOption(s)
	return opt, valid
}
