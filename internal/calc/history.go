package calc

import "time"

// HistorySize is the number of entries the history log keeps.
const HistorySize = 20

// Entry is a completed evaluation.
type Entry struct {
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Time       time.Time `json:"time"`
}

// History is a bounded log of evaluations. Newer entries come first; once
// HistorySize entries are stored, adding one drops the oldest.
type History struct {
	entries []Entry
}

func (h *History) add(e Entry) {
	if len(h.entries) < HistorySize {
		h.entries = append(h.entries, Entry{})
	}
	copy(h.entries[1:], h.entries)
	h.entries[0] = e
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the log, newest first.
func (h *History) Entries() []Entry {
	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Clear empties the log.
func (h *History) Clear() { h.entries = nil }
