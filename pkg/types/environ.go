package types

import "os"

// Environ is the process variable namespace a loaded profile is exported
// into. The resolver itself only returns an explicit mapping; exporting to
// the real process environment goes through this adapter so tests can use a
// map and library callers can opt out entirely.
type Environ interface {
	Get(key string) string
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OSEnviron is the process-environment implementation of Environ.
type OSEnviron struct{}

// NewOSEnviron returns an Environ backed by the real process environment.
func NewOSEnviron() OSEnviron {
	return OSEnviron{}
}

func (OSEnviron) Get(key string) string            { return os.Getenv(key) }
func (OSEnviron) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (OSEnviron) Set(key, value string) error      { return os.Setenv(key, value) }
func (OSEnviron) Unset(key string) error           { return os.Unsetenv(key) }

// MapEnviron is a map-backed Environ for tests and for callers that want a
// scratch namespace instead of mutating the process environment.
type MapEnviron map[string]string

// NewMapEnviron returns an empty map-backed Environ.
func NewMapEnviron() MapEnviron {
	return MapEnviron{}
}

func (m MapEnviron) Get(key string) string { return m[key] }

func (m MapEnviron) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnviron) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m MapEnviron) Unset(key string) error {
	delete(m, key)
	return nil
}
