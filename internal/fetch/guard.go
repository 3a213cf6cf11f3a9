package fetch

import "sync/atomic"

// Guard protects a rendering session against out-of-order fetch
// responses: a slower, earlier-issued fetch must not overwrite state
// already refreshed by a later one. Each fetch takes an id from Next;
// Accept is true only for the most recently issued id, so stale
// responses are discarded instead of applied.
type Guard struct {
	latest atomic.Uint64
}

// Next issues the next request id. Ids are strictly increasing.
func (g *Guard) Next() uint64 {
	return g.latest.Add(1)
}

// Accept reports whether a response with the given request id is still
// current. Responses for superseded ids return false.
func (g *Guard) Accept(id uint64) bool {
	return g.latest.Load() == id
}
