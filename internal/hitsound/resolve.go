package hitsound

import "git.lost.host/meutraa/hscopy/internal/beatmap"

// resolve computes the effective additions and sample banks for one
// instant. The override order is fixed: slider edge, then object base, then
// the governing timing point. The addition set never inherits from the
// timing point directly; it bottoms out at the resolved normal set.
func resolve(ho beatmap.HitObject, repeat int, tp *beatmap.TimingPoint) (beatmap.Additions, beatmap.SampleInfo) {
	base := ho.Base()
	additions := base.Additions
	sample := base.Sample

	if s, ok := ho.(*beatmap.Slider); ok && repeat >= 0 {
		if repeat < len(s.EdgeSounds) {
			additions = s.EdgeSounds[repeat]
		}
		if repeat < len(s.EdgeSets) {
			sample.NormalSet = s.EdgeSets[repeat].NormalSet
			sample.AdditionSet = s.EdgeSets[repeat].AdditionSet
		}
	}

	if sample.NormalSet == beatmap.SampleNone && tp != nil {
		sample.NormalSet = tp.SampleSet
	}
	if sample.AdditionSet == beatmap.SampleNone {
		sample.AdditionSet = sample.NormalSet
	}
	return additions, sample
}
