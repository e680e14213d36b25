package ui

import (
	"errors"
	"fmt"
	"sync"
)

// ScrollLock is held while any dialog is open; the page shell suppresses
// background scrolling while Locked reports true.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

func (l *ScrollLock) Acquire() {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()
}

func (l *ScrollLock) Release() {
	l.mu.Lock()
	if l.holders > 0 {
		l.holders--
	}
	l.mu.Unlock()
}

func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}

type ModalState int

const (
	Closed ModalState = iota
	Open
	Submitting
)

func (s ModalState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Submitting:
		return "submitting"
	}
	return fmt.Sprintf("ModalState(%d)", int(s))
}

var ErrInvalidTransition = errors.New("ui: invalid modal transition")

// Modal is a dialog: closed -> open -> (submitting -> open)* -> closed.
// It holds the scroll lock for as long as it is not closed.
type Modal struct {
	state ModalState
	lock  *ScrollLock
}

// NewModal returns a closed dialog. lock may be nil.
func NewModal(lock *ScrollLock) *Modal {
	return &Modal{lock: lock}
}

func (m *Modal) State() ModalState { return m.state }

func (m *Modal) IsOpen() bool { return m.state != Closed }

func (m *Modal) Submitting() bool { return m.state == Submitting }

func (m *Modal) Open() error {
	if m.state != Closed {
		return fmt.Errorf("%w: open from %s", ErrInvalidTransition, m.state)
	}
	m.state = Open
	if m.lock != nil {
		m.lock.Acquire()
	}
	return nil
}

func (m *Modal) BeginSubmit() error {
	if m.state != Open {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, m.state)
	}
	m.state = Submitting
	return nil
}

// Fail returns a submitting dialog to open.
func (m *Modal) Fail() error {
	if m.state != Submitting {
		return fmt.Errorf("%w: fail from %s", ErrInvalidTransition, m.state)
	}
	m.state = Open
	return nil
}

// Close is valid from any state; closing a closed dialog does nothing.
func (m *Modal) Close() {
	if m.state == Closed {
		return
	}
	m.state = Closed
	if m.lock != nil {
		m.lock.Release()
	}
}
