package hitsound

import (
	"time"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
)

// DefaultLeniency is how far apart two instants may be and still count as
// the same hitsound event.
const DefaultLeniency = 2 * time.Millisecond

type Copier interface {
	// Collect extracts everything needed to re-hitsound another map.
	Collect(b *beatmap.Beatmap) (*Data, error)

	// Apply writes collected hitsounds onto a destination map.
	Apply(data *Data, b *beatmap.Beatmap) error

	// Copy collects from src and applies to every destination.
	Copy(src *beatmap.Beatmap, dsts []*beatmap.Beatmap) error

	// Reset clears every hitsound attribute on the map.
	Reset(b *beatmap.Beatmap)
}

// Data is the snapshot carried from the source map to destinations. It is
// never mutated after Collect, so destinations may be applied in parallel.
type Data struct {
	Hits     []Hit
	Sections []SectionProps
}

// Hit is the fully resolved hitsound at a single instant. Edge marks
// records taken from a slider edge; a slider body record shares the exact
// time of the first edge, so the two must stay tellable apart.
type Hit struct {
	Time      time.Duration
	Additions beatmap.Additions
	Sample    beatmap.SampleInfo
	Edge      bool
}

// SectionProps is a volume change pulled from the source timing points,
// with adjacent equal volumes collapsed.
type SectionProps struct {
	Time        time.Duration
	Volume      int
	Kiai        bool
	SampleIndex int
}
