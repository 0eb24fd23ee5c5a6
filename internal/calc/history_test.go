package calc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryNewestFirst(t *testing.T) {
	var h History
	h.add(Entry{Expression: "a"})
	h.add(Entry{Expression: "b"})
	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Expression)
	assert.Equal(t, "a", entries[1].Expression)
}

func TestHistoryEviction(t *testing.T) {
	var h History
	for i := 0; i < HistorySize+1; i++ {
		h.add(Entry{Expression: fmt.Sprint(i)})
	}
	assert.Equal(t, HistorySize, h.Len())
	entries := h.Entries()
	require.Len(t, entries, HistorySize)
	assert.Equal(t, fmt.Sprint(HistorySize), entries[0].Expression)
	// entry 0 was evicted
	assert.Equal(t, "1", entries[HistorySize-1].Expression)
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	var h History
	h.add(Entry{Expression: "a"})
	entries := h.Entries()
	entries[0].Expression = "changed"
	assert.Equal(t, "a", h.Entries()[0].Expression)
}

func TestCalcHistoryBounded(t *testing.T) {
	c := New()
	for i := 0; i < 30; i++ {
		c.ApplyFunction(FuncPi)
	}
	assert.Len(t, c.History(), HistorySize)
}
