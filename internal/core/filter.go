package core

// ProfanityFilter is an opaque predicate over outgoing chat text.
type ProfanityFilter interface {
	IsProfane(text string) bool
}

// FilterFunc adapts a plain function to ProfanityFilter.
type FilterFunc func(string) bool

func (f FilterFunc) IsProfane(text string) bool { return f(text) }
