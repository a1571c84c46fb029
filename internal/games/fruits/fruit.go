package fruits

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// FruitType selects reward, sound and look of a fruit.
type FruitType uint8

const (
	Apple FruitType = iota
	Strawberry
	Orange
	Watermelon
	Pineapple // Grants a boost charge
	Banana
	Pome // Grants a life
)

var fruitNames = [...]string{
	Apple:      "apple",
	Strawberry: "strawberry",
	Orange:     "orange",
	Watermelon: "watermelon",
	Pineapple:  "pineapple",
	Banana:     "banana",
	Pome:       "pome",
}

func (t FruitType) String() string {
	if int(t) < len(fruitNames) {
		return fruitNames[t]
	}
	return fmt.Sprintf("fruit(%d)", t)
}

// ParseFruitType resolves a roster name.
func ParseFruitType(name string) (FruitType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range fruitNames {
		if n == name {
			return FruitType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fruit %q", name)
}

// IsPowerUp reports whether the type is spawned by a rare trial rather than
// drawn from the roster.
func (t FruitType) IsPowerUp() bool {
	return t == Pineapple || t == Pome
}

// SplashColor is the color class of the juice splash.
type SplashColor uint8

const (
	SplashYellow SplashColor = iota
	SplashOrange
	SplashRed
)

func (c SplashColor) String() string {
	switch c {
	case SplashYellow:
		return "yellow"
	case SplashOrange:
		return "orange"
	case SplashRed:
		return "red"
	default:
		return "unknown"
	}
}

// Splash returns the splash color class of the type.
func (t FruitType) Splash() SplashColor {
	switch t {
	case Orange, Pome:
		return SplashOrange
	case Strawberry, Watermelon:
		return SplashRed
	default:
		return SplashYellow
	}
}

// Fruit is one falling fruit. All fields are owned by the simulation.
type Fruit struct {
	ID            int
	Type          FruitType
	Pos           core.Vec
	FallSpeed     float64 // Units per second, downwards
	RotationSpeed float64 // Degrees per tick
	Angle         float64
	SpreadSpeed   float64 // Horizontal drift, only after slicing
	Sliced        bool
	SlicedFor     time.Duration
}

// Hitbox returns the collision box of the fruit.
func (f *Fruit) Hitbox(w, h float64) core.Box {
	return core.BoxAt(f.Pos, w, h)
}
