package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebalint/taskdeck/internal/model"
	"github.com/ebalint/taskdeck/internal/store/kv"
)

func TestLoadFirstRunIsEmpty(t *testing.T) {
	p := NewKVPersister(kv.NewMemKV())
	tasks := p.Load()
	assert.Empty(t, tasks)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := NewKVPersister(kv.NewMemKV())
	in := []model.Task{
		model.NewTask("Buy milk", model.PriorityHigh),
		model.NewTask("Laundry", model.PriorityLow),
	}
	in[1].Completed = true

	p.Save(in)
	out := p.Load()

	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Title, out[i].Title)
		assert.Equal(t, in[i].Completed, out[i].Completed)
		assert.Equal(t, in[i].Priority, out[i].Priority)
		assert.True(t, in[i].CreatedAt.Equal(out[i].CreatedAt),
			"createdAt mismatch: %v vs %v", in[i].CreatedAt, out[i].CreatedAt)
	}
}

func TestSavePreservesOrder(t *testing.T) {
	p := NewKVPersister(kv.NewMemKV())
	in := []model.Task{
		model.NewTask("z", model.PriorityLow),
		model.NewTask("a", model.PriorityHigh),
	}
	p.Save(in)
	out := p.Load()
	require.Len(t, out, 2)
	assert.Equal(t, "z", out[0].Title)
	assert.Equal(t, "a", out[1].Title)
}

func TestLoadDefaultsMissingPriorityToMedium(t *testing.T) {
	mem := kv.NewMemKV()
	payload := `[{"id":"abc","title":"Old record","isCompleted":false,` +
		`"createdAt":"2023-04-01T10:00:00Z"}]`
	require.NoError(t, mem.Set(tasksKey, payload))

	out := NewKVPersister(mem).Load()
	require.Len(t, out, 1)
	assert.Equal(t, model.PriorityMedium, out[0].Priority)
	assert.Equal(t, "Old record", out[0].Title)
	assert.True(t, out[0].CreatedAt.Equal(time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)))
}

func TestLoadClampsOutOfRangePriority(t *testing.T) {
	mem := kv.NewMemKV()
	payload := `[{"id":"abc","title":"x","isCompleted":false,` +
		`"createdAt":"2023-04-01T10:00:00Z","priority":7}]`
	require.NoError(t, mem.Set(tasksKey, payload))

	out := NewKVPersister(mem).Load()
	require.Len(t, out, 1)
	assert.Equal(t, model.PriorityMedium, out[0].Priority)
}

func TestLoadCorruptPayloadFallsBackToEmpty(t *testing.T) {
	mem := kv.NewMemKV()
	require.NoError(t, mem.Set(tasksKey, "{not json"))

	out := NewKVPersister(mem).Load()
	assert.Empty(t, out)
}

func TestLoadBadTimestampFallsBackToEmpty(t *testing.T) {
	mem := kv.NewMemKV()
	payload := `[{"id":"abc","title":"x","isCompleted":false,` +
		`"createdAt":"yesterday","priority":1}]`
	require.NoError(t, mem.Set(tasksKey, payload))

	out := NewKVPersister(mem).Load()
	assert.Empty(t, out)
}

func TestSortOptionRoundTrip(t *testing.T) {
	p := NewKVPersister(kv.NewMemKV())

	_, ok := p.LoadSortOption()
	assert.False(t, ok, "nothing stored yet")

	p.SaveSortOption(model.SortByPriority)
	opt, ok := p.LoadSortOption()
	require.True(t, ok)
	assert.Equal(t, model.SortByPriority, opt)
}

func TestSortOptionGarbageValue(t *testing.T) {
	mem := kv.NewMemKV()
	require.NoError(t, mem.Set(sortKey, "by-vibes"))

	_, ok := NewKVPersister(mem).LoadSortOption()
	assert.False(t, ok)
}
