package profile

import "sort"

// ResolvedProfile is the final variable mapping produced by a load:
// template defaults with the stored file's overrides applied on top.
// It preserves insertion order (template order first, file-only names
// after), is recomputed fresh on every load, and is never persisted.
type ResolvedProfile struct {
	// Profile is the name of the loaded profile.
	Profile string

	names  []string
	values map[string]string
}

func newResolvedProfile(profile string) *ResolvedProfile {
	return &ResolvedProfile{
		Profile: profile,
		values:  make(map[string]string),
	}
}

// Set assigns a value, appending the name on first assignment. Later
// assignments overwrite in place, so merge order (template first,
// overrides second) gives last-wins semantics.
func (p *ResolvedProfile) Set(name, value string) {
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// Get returns the value for name and whether it is present.
func (p *ResolvedProfile) Get(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns the variable names in insertion order. The slice is
// shared; callers must not modify it.
func (p *ResolvedProfile) Names() []string {
	return p.names
}

// Len returns the number of resolved variables.
func (p *ResolvedProfile) Len() int {
	return len(p.names)
}

// Environ returns the mapping as "name=value" strings in insertion
// order, suitable for exec.Cmd.Env style consumers.
func (p *ResolvedProfile) Environ() []string {
	out := make([]string, 0, len(p.names))
	for _, name := range p.names {
		out = append(out, name+"="+p.values[name])
	}
	return out
}

// Map returns a copy of the mapping without ordering.
func (p *ResolvedProfile) Map() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Equal reports whether two resolved profiles contain the same
// variables with the same values, regardless of order.
func (p *ResolvedProfile) Equal(other *ResolvedProfile) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.values) != len(other.values) {
		return false
	}
	for k, v := range p.values {
		ov, ok := other.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// SortedNames returns the names sorted lexicographically, for stable
// display output.
func (p *ResolvedProfile) SortedNames() []string {
	out := append([]string(nil), p.names...)
	sort.Strings(out)
	return out
}
