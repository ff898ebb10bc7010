package logs

// Named binds an originator name to a Logger, so callers don't repeat it on every message. A nil
// Logger writes through [Default].
type Named struct {
	Name   string
	Logger Logger
	// NoDebug drops Debug messages for this originator. Otherwise the underlying logger's own debug
	// setting decides.
	NoDebug bool
}

// NewNamed returns a Named logger for name writing to l.
func NewNamed(name string, l Logger) Named {
	return Named{Name: name, Logger: l}
}

func (n Named) logger() Logger {
	if n.Logger == nil {
		return Default()
	}
	return n.Logger
}

func (n Named) LogTo(stream string, msg ...any) {
	n.logger().LogTo(stream, n.Name, msg...)
}

func (n Named) Log(msg ...any) {
	n.logger().Log(n.Name, msg...)
}

func (n Named) Error(msg ...any) {
	n.logger().Error(n.Name, msg...)
}

func (n Named) Debug(msg ...any) {
	if !n.NoDebug {
		n.logger().Debug(n.Name, msg...)
	}
}
