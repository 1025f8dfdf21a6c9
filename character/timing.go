package character

// Window is a grace period that is refreshed by a triggering event and decays
// otherwise. Remaining may go negative; only its sign is meaningful.
type Window struct {
	Remaining float64
	Duration  float64
}

// Refresh restarts the window at its full duration.
func (w *Window) Refresh() {
	w.Remaining = w.Duration
}

// Decay subtracts elapsed time.
func (w *Window) Decay(dt float64) {
	w.Remaining -= dt
}

// Tick refreshes the window when trigger holds and decays it otherwise.
func (w *Window) Tick(dt float64, trigger bool) {
	if trigger {
		w.Refresh()
		return
	}
	w.Decay(dt)
}

// Open reports whether time remains in the window.
func (w Window) Open() bool {
	return w.Remaining > 0
}

// Consume zeroes the window.
func (w *Window) Consume() {
	w.Remaining = 0
}

// Invincibility counts down the post-damage immunity period.
type Invincibility struct {
	Remaining float64
	Active    bool
}

// Arm starts the immunity period.
func (i *Invincibility) Arm(duration float64) {
	if duration <= 0 {
		return
	}
	i.Remaining = duration
	i.Active = true
}

// Tick decays the timer and clears Active once it runs out.
func (i *Invincibility) Tick(dt float64) {
	if !i.Active {
		return
	}
	i.Remaining -= dt
	if i.Remaining <= 0 {
		i.Remaining = 0
		i.Active = false
	}
}
