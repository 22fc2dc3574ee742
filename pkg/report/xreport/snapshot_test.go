package xreport

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/resultcache/pkg/storage/xresult"
)

type result struct {
	Task   string `json:"task"`
	Passed bool   `json:"passed"`
}

func TestSnapshot(t *testing.T) {
	c, err := xresult.New[result](xresult.Config{Capacity: 3, TTL: time.Minute})
	require.NoError(t, err)
	for _, task := range []string{"a", "b", "c", "d"} {
		c.Add(result{Task: task, Passed: true})
	}

	s := Snapshot(c, 2)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 3, s.Capacity)
	assert.Equal(t, "1m0s", s.TTL)
	assert.Equal(t, uint64(4), s.Stats.Added)
	assert.Equal(t, uint64(1), s.Stats.CapacityEvicted)
	assert.Equal(t, []result{{"c", true}, {"d", true}}, s.Items)

	all := Snapshot(c, 0)
	assert.Len(t, all.Items, 3)
	assert.Equal(t, "b", all.Items[0].Task)
}

func TestSnapshot_EmptyCacheWritesEmptyItems(t *testing.T) {
	c, err := xresult.New[result](xresult.Config{Capacity: 1})
	require.NoError(t, err)

	w := newTestWriter(t, "r.json")
	_, err = w.Write(context.Background(), Snapshot(c, 10))
	require.NoError(t, err)

	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)

	var env struct {
		Summary map[string]json.RawMessage `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &env))
	assert.JSONEq(t, `[]`, string(env.Summary["items"]))
	assert.JSONEq(t, `"0s"`, string(env.Summary["ttl"]))
}
