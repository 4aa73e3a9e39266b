// Package ordering maintains the user-controlled total order over a
// course's lessons. Order values are positive integers used only as a
// display-sort hint: deletes leave gaps, and duplicates from racing
// creates are tolerated (the store breaks ties by id).
package ordering

// Next returns the order value for a lesson appended to a course whose
// existing lessons carry the given order values: max+1, or 1 for the
// first lesson. The read-then-write sequence around this is not
// compare-and-swap; two concurrent creates can compute the same value,
// which is an accepted limitation.
func Next(existing []int) int {
	max := 0
	for _, o := range existing {
		if o > max {
			max = o
		}
	}
	return max + 1
}

// Reposition returns a copy of seq with the element at from removed and
// reinserted at to, the drag-reposition permutation. Out-of-range indexes
// return seq unchanged.
func Reposition[T any](seq []T, from, to int) []T {
	if from < 0 || from >= len(seq) || to < 0 || to >= len(seq) {
		return seq
	}
	out := make([]T, 0, len(seq))
	out = append(out, seq[:from]...)
	out = append(out, seq[from+1:]...)
	moved := seq[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}

// Assignment pairs a lesson id with its new order value.
type Assignment struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Assignments maps a saved permutation to positional order values 1..N,
// regardless of what the lessons' previous order values were.
func Assignments(ids []string) []Assignment {
	out := make([]Assignment, len(ids))
	for i, id := range ids {
		out[i] = Assignment{ID: id, Order: i + 1}
	}
	return out
}
