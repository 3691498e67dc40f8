package history

import "time"

// newTimer is the one seam between Stack's grouping policy and a
// concrete clock, so a timer wheel or a platform timer could be
// swapped in without changing the observable flush contract; vgrid's
// is a plain time.AfterFunc.
func newTimer(d time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, fn)
}
