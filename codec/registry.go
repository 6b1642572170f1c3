package codec

import "sync"

// Registry manages the available codecs
type Registry struct {
	mu          sync.RWMutex
	codecs      map[string]Codec // keyed by name
	byAlgorithm map[Algorithm]Codec
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		codecs:      make(map[string]Codec),
		byAlgorithm: make(map[Algorithm]Codec),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry codec packages register into
func Default() *Registry {
	return defaultRegistry
}

// Register registers a codec using both its name and algorithm
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name
func Get(name string) (Codec, error) {
	return defaultRegistry.Get(name)
}

// Lookup retrieves a codec by algorithm
func Lookup(algo Algorithm) (Codec, error) {
	return defaultRegistry.Lookup(algo)
}

// List returns all registered codecs
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec, replacing any codec with the same name or algorithm
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byAlgorithm[codec.Algorithm()]; ok {
		delete(r.codecs, old.Name())
	}
	r.codecs[codec.Name()] = codec
	r.byAlgorithm[codec.Algorithm()] = codec
}

// Get retrieves a codec by name
func (r *Registry) Get(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[name]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// Lookup retrieves a codec by algorithm
func (r *Registry) Lookup(algo Algorithm) (Codec, error) {
	if !algo.Valid() {
		return nil, ErrUnknownAlgorithm
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.byAlgorithm[algo]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// List returns all registered codecs in algorithm order
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.byAlgorithm))
	for i := range algorithmNames {
		if c, ok := r.byAlgorithm[Algorithm(i)]; ok {
			codecs = append(codecs, c)
		}
	}
	return codecs
}

// Clone returns an independent copy of r
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry()
	for k, v := range r.codecs {
		c.codecs[k] = v
	}
	for k, v := range r.byAlgorithm {
		c.byAlgorithm[k] = v
	}
	return c
}
