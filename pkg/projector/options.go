package projector

type Option func(p *Projector)

// WithEffect registers effects, one of which is picked at random per Play.
func WithEffect(e ...Effect) Option {
	return func(p *Projector) {
		p.effs = e
	}
}

// WithLimit stops playback after n frames. n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(p *Projector) {
		p.limit = n
	}
}

// WithRewind rewinds the film before playing it.
func WithRewind() Option {
	return func(p *Projector) {
		p.rewind = true
	}
}
