package sched

// gcd of two positive integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm of two positive integers.
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// Hyperperiod returns the least common multiple of all task periods, the
// number of ticks one full simulation covers.
func (ts *TaskSet) Hyperperiod() int {
	h := 1
	for i := range ts.tasks {
		h = lcm(h, ts.tasks[i].Period)
	}
	return h
}
