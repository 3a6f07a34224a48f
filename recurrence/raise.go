package recurrence

// raised carries a domain error out of a step through panic. It is
// recovered at the evaluation boundary and returned as an error.
type raised struct {
	err error
}

func raise(err error) {
	panic(raised{err: err})
}

// deferral unwinds an evaluation that reached the depth budget. The driver
// computes key on a fresh stack before retrying.
type deferral[K comparable] struct {
	key K
}
