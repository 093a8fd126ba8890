// Package sshtty adapts a gliderlabs/ssh session into a tcell terminal, so
// the game can render over SSH exactly as it does locally.
package sshtty

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty backed by one SSH session. Each connected client
// gets its own Tty → tcell.Screen pair.
type Tty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func() // resize callback registered by tcell
}

// New wraps an SSH session as a tcell Tty. pty holds the initial window
// size; winCh delivers subsequent resize events.
func New(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read reads raw keyboard bytes from the session's stdin.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write writes rendered output to the session's stdout.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH session channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start is a no-op; the SSH channel is already open.
func (t *Tty) Start() error { return nil }

// Stop is a no-op; the channel is managed by the server handler goroutine.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op; SSH flushes writes immediately.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers a callback invoked on every window resize event. It
// also starts a goroutine that drains the window-change channel for the
// lifetime of the session.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
