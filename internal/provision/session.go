package provision

import (
	"sync"
	"sync/atomic"

	"github.com/mateconpizza/mzd/internal/manifest"
	"github.com/mateconpizza/mzd/internal/platform"
)

// InitResult is returned by Session.Init.
type InitResult struct {
	WasFirstCall bool               `json:"was_first_call"`
	Results      []*manifest.Result `json:"results"`
}

// Session runs the automatic provisioning pass at most once. The outcome,
// results or error, is cached and shared by every caller.
type Session struct {
	w       Writer
	os      platform.OS
	once    sync.Once
	claimed atomic.Bool
	results []*manifest.Result
	err     error
}

// NewSession returns a session provisioning the built-in browsers on os.
func NewSession(w Writer, os platform.OS) *Session {
	return &Session{w: w, os: os}
}

// Init runs WriteAll on the first call and blocks concurrent callers until it
// completes. WasFirstCall is true for exactly one caller.
func (s *Session) Init() (*InitResult, error) {
	first := s.claimed.CompareAndSwap(false, true)
	s.once.Do(func() {
		s.results, s.err = WriteAll(s.w, s.os)
	})
	if s.err != nil {
		return nil, s.err
	}

	return &InitResult{WasFirstCall: first, Results: s.results}, nil
}

// Done reports whether the pass already ran or is running.
func (s *Session) Done() bool {
	return s.claimed.Load()
}
