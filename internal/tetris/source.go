package tetris

import (
	"fmt"
	"math/rand"
)

// VariantSource supplies the variant of each newly spawned piece.
type VariantSource interface {
	NextVariant() Variant
}

// RandSource draws variants uniformly and independently, with no bag.
// The sequence is fully determined by the seed.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a uniform source seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// NextVariant returns one of the seven variants with probability 1/7.
func (s *RandSource) NextVariant() Variant {
	return Variant(s.rng.Intn(VariantCount))
}

// ScriptedSource replays a fixed sequence of variants, wrapping around at
// the end.
type ScriptedSource struct {
	seq  []Variant
	next int
}

// NewScriptedSource returns a source cycling through seq.
// An empty or invalid sequence panics.
func NewScriptedSource(seq ...Variant) *ScriptedSource {
	if len(seq) == 0 {
		panic("tetris: scripted source needs at least one variant")
	}
	for _, v := range seq {
		if !v.Valid() {
			panic(fmt.Sprintf("tetris: invalid scripted variant %d", uint8(v)))
		}
	}
	return &ScriptedSource{seq: append([]Variant(nil), seq...)}
}

// NextVariant returns the next scripted variant.
func (s *ScriptedSource) NextVariant() Variant {
	v := s.seq[s.next]
	s.next = (s.next + 1) % len(s.seq)
	return v
}
