package core

// Props is a mutable property bag holding a node's visual and behavioral
// settings. It is not safe for concurrent use; see the package threading
// contract.
type Props struct {
	values map[string]any
}

// Set stores value under key, replacing any previous value.
func (p *Props) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Props) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Delete removes key from the bag.
func (p *Props) Delete(key string) {
	delete(p.values, key)
}

// Len returns the number of stored properties.
func (p *Props) Len() int { return len(p.values) }

// Keys returns the stored property keys in unspecified order.
func (p *Props) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	return keys
}
