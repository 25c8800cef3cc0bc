package store

import (
	"context"
	"sync"
)

// ---------------------------------------------------------------------------
// In-memory stub transport
// ---------------------------------------------------------------------------

// stubTransport answers requests from a canned method+path table and records
// every call, mirroring how the real client hands raw bodies to the stores.
type stubTransport struct {
	mu        sync.Mutex
	responses map[string][]byte
	errors    map[string]error
	calls     []string
	bodies    map[string]any
}

func newStubTransport() *stubTransport {
	return &stubTransport{
		responses: make(map[string][]byte),
		errors:    make(map[string]error),
		bodies:    make(map[string]any),
	}
}

func (s *stubTransport) reply(method, path, body string) {
	s.mu.Lock()
	s.responses[method+" "+path] = []byte(body)
	s.mu.Unlock()
}

func (s *stubTransport) failWith(method, path string, err error) {
	s.mu.Lock()
	s.errors[method+" "+path] = err
	s.mu.Unlock()
}

func (s *stubTransport) callCount(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == method+" "+path {
			n++
		}
	}
	return n
}

func (s *stubTransport) lastBody(method, path string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[method+" "+path]
}

func (s *stubTransport) do(method, path string, body any) ([]byte, error) {
	key := method + " " + path
	s.mu.Lock()
	s.calls = append(s.calls, key)
	if body != nil {
		s.bodies[key] = body
	}
	err := s.errors[key]
	resp := s.responses[key]
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *stubTransport) Get(_ context.Context, path string, _ map[string]string) ([]byte, error) {
	return s.do("GET", path, nil)
}

func (s *stubTransport) Post(_ context.Context, path string, body any) ([]byte, error) {
	return s.do("POST", path, body)
}

func (s *stubTransport) Put(_ context.Context, path string, body any) ([]byte, error) {
	return s.do("PUT", path, body)
}

func (s *stubTransport) Delete(_ context.Context, path string) ([]byte, error) {
	return s.do("DELETE", path, nil)
}

// stubTokens is an in-memory ports.TokenStore.
type stubTokens struct {
	mu    sync.Mutex
	token string
}

func (s *stubTokens) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *stubTokens) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *stubTokens) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return nil
}
