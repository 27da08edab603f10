package store

// View tracks one downstream consumer of the store, e.g. the scrollback
// list. A view registers zero-argument callbacks and re-reads a snapshot
// whenever one fires. Until the view's first bulk fetch has been merged it
// receives no live notifications: its first paint picks the messages up
// from the fetch result instead.
type View struct {
	fetched   bool
	callbacks []func()
}

// OnChange registers a callback fired once per store mutation visible to
// this view.
func (v *View) OnChange(fn func()) {
	v.callbacks = append(v.callbacks, fn)
}

// Fetched reports whether the initial bulk fetch has completed.
func (v *View) Fetched() bool {
	return v.fetched
}

func (v *View) markFetched() {
	v.fetched = true
}

func (v *View) notify() {
	notificationsTotal.Inc()
	for _, fn := range v.callbacks {
		fn()
	}
}
