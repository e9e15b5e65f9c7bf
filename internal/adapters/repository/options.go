package repository

// Option configures a RosterStore.
type Option func(*RosterStore)

// WithMaxSize bounds the roster. Zero or negative means unbounded.
func WithMaxSize(n int) Option {
	return func(s *RosterStore) {
		if n > 0 {
			s.maxSize = n
		}
	}
}
