package audio

import (
	"fmt"
	"sync/atomic"
)

// Props stores engine configuration that can be updated without locks. All
// properties should be registered before any reads take place.
type Props struct {
	properties map[string]*atomic.Value
	setters    map[string]setter
}

func NewProps() *Props {
	return &Props{
		properties: make(map[string]*atomic.Value),
		setters:    make(map[string]setter),
	}
}

// Set updates the property with value. The key has to be registered first
// using Register.
func (p *Props) Set(key string, value interface{}) error {
	prop, ok := p.properties[key]
	if !ok {
		return fmt.Errorf("unknown property %s", key)
	}
	set, ok := p.setters[key]
	if !ok {
		return fmt.Errorf("unknown property %s", key)
	}
	if err := set(value, prop); err != nil {
		return fmt.Errorf("set property %s: %w", key, err)
	}
	return nil
}

func (p *Props) Get(key string) (interface{}, error) {
	prop, ok := p.properties[key]
	if !ok {
		return nil, fmt.Errorf("unknown property %s", key)
	}
	return prop.Load(), nil
}

// Register adds a new property.
func (p *Props) Register(key string, set setter, init interface{}) (*atomic.Value, error) {
	var prop atomic.Value
	p.properties[key] = &prop
	p.setters[key] = set
	return &prop, set(init, &prop)
}

func (p *Props) MustRegister(key string, set setter, init interface{}) *atomic.Value {
	if prop, err := p.Register(key, set, init); err != nil {
		panic(err)
	} else {
		return prop
	}
}

type setter func(val interface{}, dest *atomic.Value) error

func toFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("value is not a number: %v", v)
	}
}

// clampFloat64 stores the value clamped into [min, max] instead of
// rejecting out-of-range input.
func clampFloat64(min, max float64) setter {
	return func(v interface{}, dest *atomic.Value) error {
		f, err := toFloat64(v)
		if err != nil {
			return err
		}
		if f < min {
			f = min
		}
		if f > max {
			f = max
		}
		dest.Store(f)
		return nil
	}
}

func setIntRange(min, max int) setter {
	return func(v interface{}, dest *atomic.Value) error {
		var i int
		switch n := v.(type) {
		case int:
			i = n
		case float64:
			i = int(n)
		default:
			return fmt.Errorf("value is not an int: %v", v)
		}
		if i < min || i > max {
			return fmt.Errorf("value is not in valid range %v - %v: %v", min, max, i)
		}
		dest.Store(i)
		return nil
	}
}

func setString(v interface{}, dest *atomic.Value) error {
	if s, ok := v.(string); ok {
		dest.Store(s)
		return nil
	}
	return fmt.Errorf("value is not a string: %v", v)
}

func setGrid(v interface{}, dest *atomic.Value) error {
	if g, ok := v.(StepGrid); ok {
		dest.Store(g)
		return nil
	}
	return fmt.Errorf("value is not a step grid: %v", v)
}
