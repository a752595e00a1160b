package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
)

// Encode writes the beatmap back out. Raw sections are emitted verbatim in
// their original order; [TimingPoints] and [HitObjects] are regenerated
// from the model.
func Encode(w io.Writer, b *beatmap.Beatmap) error {
	if _, err := fmt.Fprintf(w, "osu file format v%d\n", b.FormatVersion); nil != err {
		return err
	}
	for _, section := range b.Sections {
		if _, err := fmt.Fprintf(w, "\n[%s]\n", section.Name); nil != err {
			return err
		}
		var err error
		switch strings.ToLower(section.Name) {
		case "timingpoints":
			err = encodeTimingPoints(w, b.TimingPoints)
		case "hitobjects":
			err = encodeHitObjects(w, b.HitObjects)
		default:
			for _, line := range section.Lines {
				if _, err = fmt.Fprintln(w, line); nil != err {
					break
				}
			}
		}
		if nil != err {
			return err
		}
	}
	return nil
}

func encodeTimingPoints(w io.Writer, tps []beatmap.TimingPoint) error {
	for i := range tps {
		tp := &tps[i]
		uninherited := 0
		if tp.Uninherited {
			uninherited = 1
		}
		_, err := fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d,%d,%d\n",
			formatMS(tp.Time), formatFloat(tp.BeatLength), tp.Meter,
			int(tp.SampleSet), tp.SampleIndex, tp.Volume, uninherited, tp.Effects)
		if nil != err {
			return err
		}
	}
	return nil
}

func encodeHitObjects(w io.Writer, objects []beatmap.HitObject) error {
	for _, ho := range objects {
		base := ho.Base()
		head := fmt.Sprintf("%d,%d,%s,%d,%d",
			base.X, base.Y, formatMS(base.Time), base.Type, int(base.Additions))

		var err error
		switch o := ho.(type) {
		case *beatmap.Slider:
			_, err = fmt.Fprintf(w, "%s,%s,%d,%s,%s,%s,%s\n",
				head, o.PathSpec, o.Slides, formatFloat(o.Length),
				formatEdgeSounds(o), formatEdgeSets(o), formatSample(&base.Sample))
		case *beatmap.Spinner:
			_, err = fmt.Fprintf(w, "%s,%s,%s\n",
				head, formatMS(o.EndTime), formatSample(&base.Sample))
		case *beatmap.Hold:
			_, err = fmt.Fprintf(w, "%s,%s:%s\n",
				head, formatMS(o.EndTime), formatSample(&base.Sample))
		default:
			_, err = fmt.Fprintf(w, "%s,%s\n", head, formatSample(&base.Sample))
		}
		if nil != err {
			return err
		}
	}
	return nil
}

// formatEdgeSounds pads the per-edge lists to Slides+1 entries so the edge
// columns always agree with the slide count.
func formatEdgeSounds(s *beatmap.Slider) string {
	edges := make([]string, s.Slides+1)
	for i := range edges {
		var a beatmap.Additions
		if i < len(s.EdgeSounds) {
			a = s.EdgeSounds[i]
		}
		edges[i] = strconv.Itoa(int(a))
	}
	return strings.Join(edges, "|")
}

func formatEdgeSets(s *beatmap.Slider) string {
	edges := make([]string, s.Slides+1)
	for i := range edges {
		var pair beatmap.EdgePair
		if i < len(s.EdgeSets) {
			pair = s.EdgeSets[i]
		}
		edges[i] = fmt.Sprintf("%d:%d", int(pair.NormalSet), int(pair.AdditionSet))
	}
	return strings.Join(edges, "|")
}

func formatSample(s *beatmap.SampleInfo) string {
	return fmt.Sprintf("%d:%d:%d:%d:%s",
		int(s.NormalSet), int(s.AdditionSet), s.Index, s.Volume, s.Filename)
}

func formatMS(d time.Duration) string {
	return formatFloat(float64(d) / float64(time.Millisecond))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
