package fruits

// Sound is an audio cue category. Playback belongs to the audio collaborator.
type Sound uint8

const (
	SoundSlash Sound = iota
	SoundHit
	SoundPenalty
	SoundBoost
	SoundBoostHit
	SoundRecord
	SoundGameOver
	SoundAppleSlice
	SoundStrawberrySlice
	SoundOrangeSlice
	SoundWatermelonSlice
	SoundPineappleSlice
	SoundBananaSlice
	SoundPomeSlice
	soundCount
)

var soundNames = [...]string{
	SoundSlash:           "slash",
	SoundHit:             "hit",
	SoundPenalty:         "penalty",
	SoundBoost:           "boost",
	SoundBoostHit:        "boost_hit",
	SoundRecord:          "record",
	SoundGameOver:        "game_over",
	SoundAppleSlice:      "apple_slice",
	SoundStrawberrySlice: "strawberry_slice",
	SoundOrangeSlice:     "orange_slice",
	SoundWatermelonSlice: "watermelon_slice",
	SoundPineappleSlice:  "pineapple_slice",
	SoundBananaSlice:     "banana_slice",
	SoundPomeSlice:       "pome_slice",
}

func (s Sound) String() string {
	if s < soundCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sounds lists every cue, in declaration order.
func Sounds() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}

// Volume is the relative playback volume of the cue.
func (s Sound) Volume() float64 {
	switch s {
	case SoundSlash:
		return 0.6
	case SoundHit:
		return 0.7
	default:
		return 1.0
	}
}

// SliceSound returns the cue played when a fruit of type t is cut.
func SliceSound(t FruitType) Sound {
	switch t {
	case Strawberry:
		return SoundStrawberrySlice
	case Orange:
		return SoundOrangeSlice
	case Watermelon:
		return SoundWatermelonSlice
	case Pineapple:
		return SoundPineappleSlice
	case Banana:
		return SoundBananaSlice
	case Pome:
		return SoundPomeSlice
	default:
		return SoundAppleSlice
	}
}
