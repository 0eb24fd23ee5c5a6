package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fjl/gio-scicalc/internal/calc"
)

// session is the single calculator session served by this process.
// Tool calls may arrive concurrently; mu serialises them.
type session struct {
	mu   sync.Mutex
	calc *calc.Calculator
}

func newSession(c *calc.Calculator) *session {
	return &session{calc: c}
}

// state is a snapshot of the calculator for clients.
type state struct {
	Display   string   `json:"display"`
	AngleMode string   `json:"angle_mode"`
	Memory    float64  `json:"memory"`
	Parens    int      `json:"parens"`
	Ans       string   `json:"ans"`
	Pending   *pending `json:"pending,omitempty"`
}

type pending struct {
	Op   string `json:"op"`
	Left string `json:"left"`
}

// press parses whitespace-separated keys and runs them in order. If any key
// is unknown, nothing is run.
func (s *session) press(keys string) (string, error) {
	tokens := strings.Fields(keys)
	if len(tokens) == 0 {
		return "", fmt.Errorf("no keys given")
	}
	actions := make([]calc.Action, len(tokens))
	for i, tok := range tokens {
		a, err := calc.ParseAction(tok)
		if err != nil {
			return "", err
		}
		actions[i] = a
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.calc.Do(a)
	}
	return s.calc.Display(), nil
}

func (s *session) display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.Display()
}

func (s *session) history() []calc.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.History()
}

func (s *session) clearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calc.ClearHistory()
}

func (s *session) snapshot() state {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := state{
		Display:   s.calc.Display(),
		AngleMode: s.calc.AngleMode().String(),
		Memory:    s.calc.Memory(),
		Parens:    s.calc.Parens(),
		Ans:       calc.FormatNumber(s.calc.Ans()),
	}
	if op, left, ok := s.calc.Pending(); ok {
		st.Pending = &pending{Op: op.String(), Left: calc.FormatNumber(left)}
	}
	return st
}
