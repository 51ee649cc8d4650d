package notifiers

// Notifier notify board cycle result
type Notifier interface {
	Notify(*CycleResult)
	Close()
}

// Nop discard every result
type Nop struct{}

// Notify implements Notifier
func (Nop) Notify(*CycleResult) {}

// Close implements Notifier
func (Nop) Close() {}
