package powers

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CharacterSpec is one playable character definition. Script is a path into
// the embedded scripts directory; empty means the character has no power.
type CharacterSpec struct {
	Name        string  `yaml:"name"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Script      string  `yaml:"script"`
	Portrait    string  `yaml:"portrait"`
	BallBonus   int     `yaml:"ball_bonus"`
	Multiplier  float64 `yaml:"multiplier"`
}

func LoadCharacterSpec(filename string) (*CharacterSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("powers: load %s: %w", filename, err)
	}
	var spec CharacterSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("powers: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}

// Character bundles a spec with its compiled power.
type Character struct {
	Spec  *CharacterSpec
	Power Power
}

// LoadCharacter loads a spec and compiles its power script. Characters
// without a script get the nop power.
func LoadCharacter(filename string) (*Character, error) {
	spec, err := LoadCharacterSpec(filename)
	if err != nil {
		return nil, err
	}
	c := &Character{Spec: spec, Power: NopPower{}}
	if spec.Script != "" {
		p, err := LoadPower(spec.Script)
		if err != nil {
			return nil, err
		}
		c.Power = p
	}
	return c, nil
}

// LoadAllCharacters loads every embedded character spec.
func LoadAllCharacters() ([]*Character, error) {
	names, err := CharacterFiles()
	if err != nil {
		return nil, err
	}
	out := make([]*Character, 0, len(names))
	for _, n := range names {
		c, err := LoadCharacter(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
