package engine

import "github.com/cocosip/go-compengine/codec"

// Telemetry is a snapshot of the most recent call
type Telemetry struct {
	// LastAlgorithm is the algorithm of the last call, or the last default set
	LastAlgorithm codec.Algorithm

	// LastRatio is BytesOut/BytesIn of the last successful call, 0 after a failure
	LastRatio float32

	// LastResult is the result code of the last call
	LastResult int32

	Succeeded uint64
	Failed    uint64
}

// record updates the snapshot; callers hold e.mu
func (t *Telemetry) record(algo codec.Algorithm, res codec.Result) {
	t.LastAlgorithm = algo
	t.LastResult = res.Error
	if res.OK() {
		t.LastRatio = res.Ratio()
		t.Succeeded++
		return
	}
	t.LastRatio = 0
	t.Failed++
}
