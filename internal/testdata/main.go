package testdata

import (
	"strings"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
	"git.lost.host/meutraa/hscopy/internal/parser"
)

// A small map exercising every object kind: 120 BPM, a soft default bank,
// an inherited half-speed section at 4s, one circle, one two-slide slider,
// one spinner, and one mania hold.
const data = `osu file format v14

[General]
AudioFilename: audio.mp3
SampleSet: Soft
Mode: 0

[Metadata]
Title:Fixture
Artist:Nobody
Version:Easy

[Difficulty]
HPDrainRate:5
CircleSize:4
OverallDifficulty:7
ApproachRate:9
SliderMultiplier:1.4
SliderTickRate:1

[TimingPoints]
0,500,4,2,0,70,1,0
4000,-50,4,1,1,40,0,1

[HitObjects]
256,192,1000,1,8,1:2:0:0:
100,100,2000,2,0,B|200:100,2,140,2|8|0,1:2|0:0|3:0,0:0:0:0:
256,192,5000,12,4,6000,0:0:0:0:
64,192,7000,128,2,7500:0:0:0:0:
`

func GetBeatmap() (*beatmap.Beatmap, error) {
	return parser.Decode(strings.NewReader(data))
}
