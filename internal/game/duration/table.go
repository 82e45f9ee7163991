package duration

// Table holds the remaining ticks of every duration a player carries.
// The zero value is an empty table.
// It is not safe for concurrent use; the caller must serialise access.
//
// Invariant: every entry is >= 0.
type Table struct {
	ticks [NumKinds]int
}

func mustValid(k Kind, op string) {
	if !k.Valid() {
		panic("duration: " + op + " precondition violated: kind out of range")
	}
}

// Get returns the remaining ticks for k.
//
// Precondition: k.Valid().
func (t *Table) Get(k Kind) int {
	mustValid(k, "Get")
	return t.ticks[k]
}

// Set overwrites the remaining ticks for k. Negative values are stored as 0.
//
// Precondition: k.Valid().
// Postcondition: Get(k) == max(ticks, 0).
func (t *Table) Set(k Kind, ticks int) {
	mustValid(k, "Set")
	if ticks < 0 {
		ticks = 0
	}
	t.ticks[k] = ticks
}

// IsActive reports whether k has any ticks remaining.
func (t *Table) IsActive(k Kind) bool {
	return t.Get(k) > 0
}

// Increase adds turns*BaselineDelay ticks to k and clamps the result at
// limit*BaselineDelay. A limit of 0 means uncapped.
//
// Precondition: k.Valid(); turns >= 0; limit >= 0.
// Postcondition: Get(k) <= limit*BaselineDelay when limit > 0.
func (t *Table) Increase(k Kind, turns, limit int) {
	mustValid(k, "Increase")
	if turns < 0 || limit < 0 {
		panic("duration: Increase precondition violated: turns and limit must be >= 0")
	}
	t.ticks[k] += turns * BaselineDelay
	if limit > 0 && t.ticks[k] > limit*BaselineDelay {
		t.ticks[k] = limit * BaselineDelay
	}
}

// Clear zeroes k.
func (t *Table) Clear(k Kind) {
	t.Set(k, 0)
}

// Tick removes delay ticks from every active duration and returns the kinds
// that reached zero, in declaration order.
//
// Precondition: delay >= 0.
// Postcondition: for every returned kind, IsActive is false.
func (t *Table) Tick(delay int) []Kind {
	if delay < 0 {
		panic("duration: Tick precondition violated: delay must be >= 0")
	}
	var expired []Kind
	for k := range t.ticks {
		if t.ticks[k] == 0 {
			continue
		}
		t.ticks[k] -= delay
		if t.ticks[k] <= 0 {
			t.ticks[k] = 0
			expired = append(expired, Kind(k))
		}
	}
	return expired
}

// Active returns every kind with ticks remaining, in declaration order.
func (t *Table) Active() []Kind {
	var out []Kind
	for k, v := range t.ticks {
		if v > 0 {
			out = append(out, Kind(k))
		}
	}
	return out
}
