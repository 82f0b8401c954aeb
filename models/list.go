package models

// DefaultListLimit is used when a list request does not set a limit.
const DefaultListLimit = 50

// MaxListLimit caps a single page.
const MaxListLimit = 500

// ListOptions pages a list query ordered by id.
type ListOptions struct {
	Limit  uint64
	Offset uint64
}

// Normalize returns o with Limit defaulted and capped.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit == 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	return o
}
