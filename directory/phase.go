package directory

import "fmt"

// Phase is the lifecycle phase of a State. Exactly one is active at a time.
type Phase int

const (
	// InitialLoading is entered on construction and on a retried fresh load.
	InitialLoading Phase = iota
	// AppendLoading is entered by LoadMore and by a retried append.
	AppendLoading
	// Error is entered when a fetch fails; Retry leaves it.
	Error
	// Ready is the steady state.
	Ready
)

func (p Phase) String() string {
	switch p {
	case InitialLoading:
		return "initial_loading"
	case AppendLoading:
		return "append_loading"
	case Error:
		return "error"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a phase name produced by MarshalText.
func (p *Phase) UnmarshalText(b []byte) error {
	for _, c := range []Phase{InitialLoading, AppendLoading, Error, Ready} {
		if c.String() == string(b) {
			*p = c
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", string(b))
}

// Loading reports whether a fetch is pending in this phase.
func (p Phase) Loading() bool { return p == InitialLoading || p == AppendLoading }
