package assembly

// Status is what every role step returns: keep looping or stop.
type Status bool

const (
	MoreWork Status = true
	Done     Status = false
)

func (s Status) String() string {
	if s == MoreWork {
		return "more work"
	}
	return "done"
}
