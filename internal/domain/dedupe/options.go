package dedupe

// Option configures a Set.
type Option func(*settings)

type settings struct {
	capacity int
}

// WithCapacity presizes the set for n values.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}
