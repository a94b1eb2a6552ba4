// Package clipboard provides the text surface's copy/paste storage, backed
// by the system clipboard when one is available.
package clipboard

import (
	"sync"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/jot/internal/logger"
)

// Clipboard stores text for cut, copy and paste.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Register is an in-process clipboard.
type Register struct {
	mu   sync.Mutex
	text string
}

// Read returns the stored text.
func (r *Register) Read() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text, nil
}

// Write replaces the stored text.
func (r *Register) Write(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = text
	return nil
}

// System uses the OS clipboard and mirrors every write into a Register, so
// paste keeps working on hosts without xclip/xsel/wl-clipboard.
type System struct {
	fallback Register
}

// Read prefers the OS clipboard.
func (s *System) Read() (string, error) {
	if !sysclip.Unsupported {
		text, err := sysclip.ReadAll()
		if err == nil {
			return text, nil
		}
		logger.Debugf("Clipboard: system read failed, using internal register: %v", err)
	}
	return s.fallback.Read()
}

// Write stores text in both the OS clipboard and the internal register.
func (s *System) Write(text string) error {
	_ = s.fallback.Write(text)
	if sysclip.Unsupported {
		return nil
	}
	if err := sysclip.WriteAll(text); err != nil {
		logger.Debugf("Clipboard: system write failed, kept internal copy: %v", err)
	}
	return nil
}

// New returns a System clipboard when useSystem is set, otherwise a Register.
func New(useSystem bool) Clipboard {
	if useSystem {
		return &System{}
	}
	return &Register{}
}
