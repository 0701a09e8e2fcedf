// Package levels defines the persisted level format shared by the game and
// the editor, plus the levels shipped with the binary.
package levels

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the on-disk level format. All positions are world-space floats
// rounded to 3 decimals by the editor on save.
type File struct {
	Name            string           `json:"name"`
	Pegs            []Peg            `json:"pegs"`
	Characteristics []Characteristic `json:"characteristics"`
	Shapes          []Shape          `json:"shapes"`
	Spacers         []Spacer         `json:"spacers"`
}

type Peg struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Color    string  `json:"color"`
	Type     string  `json:"type"`
	Size     string  `json:"size"`
	Rotation float64 `json:"rotation,omitempty"`
}

// Size carries either rect dimensions or a radius, depending on the entity.
type Size struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

type Characteristic struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Shape      string  `json:"shape"`
	Size       Size    `json:"size"`
	Rotation   float64 `json:"rotation,omitempty"`
	BounceType string  `json:"bounceType"`
}

type Shape struct {
	X                        float64          `json:"x"`
	Y                        float64          `json:"y"`
	Z                        float64          `json:"z"`
	Type                     string           `json:"type"`
	Size                     float64          `json:"size"`
	Align                    string           `json:"align,omitempty"`
	Justify                  string           `json:"justify,omitempty"`
	Gap                      float64          `json:"gap,omitempty"`
	Rotation                 float64          `json:"rotation,omitempty"`
	CanTakeObjects           bool             `json:"canTakeObjects"`
	ContainedPegs            []Peg            `json:"containedPegs,omitempty"`
	ContainedCharacteristics []Characteristic `json:"containedCharacteristics,omitempty"`
}

type Spacer struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Size Size    `json:"size"`
}

func Decode(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("levels: decode: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Decode(b)
}

func (f *File) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("levels: encode: %w", err)
	}
	return b, nil
}
