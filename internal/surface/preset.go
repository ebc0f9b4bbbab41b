package surface

import (
	"fmt"

	"github.com/Faultbox/ragingsea/internal/config"
)

// LoadPreset reads a preset file into a new parameter set.
func LoadPreset(path string) (*Params, error) {
	water, err := config.LoadPreset(path)
	if err != nil {
		return nil, err
	}
	p, err := NewParams(water)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// SavePreset writes the current values to path.
func (p *Params) SavePreset(path string, noiseSeed int64) error {
	return config.SavePreset(path, p.WaterConfig(noiseSeed))
}
