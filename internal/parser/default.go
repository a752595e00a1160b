package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/hscopy/internal/beatmap"
)

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*beatmap.Beatmap, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func (p *DefaultParser) Write(file string, b *beatmap.Beatmap) error {
	f, err := os.Create(file)
	if nil != err {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := Encode(w, b); nil != err {
		return err
	}
	return w.Flush()
}

// Decode reads a .osu document. The [TimingPoints] and [HitObjects]
// sections are parsed into the model; every other section is kept as raw
// lines so Encode can reproduce it untouched.
func Decode(r io.Reader) (*beatmap.Beatmap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var header string
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" {
			continue
		}
		header = line
		break
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	if !strings.HasPrefix(strings.ToLower(header), "osu file format v") {
		return nil, fmt.Errorf("invalid .osu header: %q", header)
	}
	version, err := strconv.Atoi(strings.TrimSpace(header[len("osu file format v"):]))
	if nil != err {
		return nil, fmt.Errorf("invalid .osu version in header %q: %w", header, err)
	}

	b := &beatmap.Beatmap{FormatVersion: version}
	section := ""
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			b.Sections = append(b.Sections, beatmap.Section{Name: section})
			continue
		}
		if section == "" {
			continue
		}
		switch strings.ToLower(section) {
		case "timingpoints":
			if tp, ok := parseTimingPoint(line); ok {
				b.TimingPoints = append(b.TimingPoints, tp)
			}
		case "hitobjects":
			if ho := parseHitObject(line); ho != nil {
				b.HitObjects = append(b.HitObjects, ho)
			}
		default:
			cur := &b.Sections[len(b.Sections)-1]
			cur.Lines = append(cur.Lines, line)
			if strings.EqualFold(section, "difficulty") {
				if k, v := splitKeyVal(line); strings.EqualFold(k, "SliderMultiplier") {
					b.SliderMultiplier = parseFloat(v, beatmap.DefaultSliderMultiplier)
				}
			}
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	return b, nil
}

func parseTimingPoint(line string) (beatmap.TimingPoint, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return beatmap.TimingPoint{}, false
	}
	tp := beatmap.TimingPoint{
		Time:        millis(parseFloat(parts[0], 0)),
		BeatLength:  parseFloat(parts[1], 0),
		Meter:       4,
		Volume:      100,
		Uninherited: true,
	}
	if len(parts) > 2 {
		tp.Meter = parseInt(parts[2], 4)
	}
	if len(parts) > 3 {
		tp.SampleSet = toSampleSet(parseInt(parts[3], 0))
	}
	if len(parts) > 4 {
		tp.SampleIndex = parseInt(parts[4], 0)
	}
	if len(parts) > 5 {
		tp.Volume = parseInt(parts[5], 100)
	}
	if len(parts) > 6 {
		tp.Uninherited = strings.TrimSpace(parts[6]) == "1"
	}
	if len(parts) > 7 {
		tp.Effects = parseInt(parts[7], 0)
	}
	return tp, true
}

const (
	typeCircle  = 1 << 0
	typeSlider  = 1 << 1
	typeSpinner = 1 << 3
	typeHold    = 1 << 7
)

func parseHitObject(line string) beatmap.HitObject {
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return nil
	}
	base := beatmap.Base{
		X:         parseInt(parts[0], 0),
		Y:         parseInt(parts[1], 0),
		Time:      millis(parseFloat(parts[2], 0)),
		Type:      parseInt(parts[3], 0),
		Additions: beatmap.Additions(parseInt(parts[4], 0)),
	}

	switch {
	case base.Type&typeHold != 0:
		h := &beatmap.Hold{B: base}
		if len(parts) > 5 {
			end, sample := parseEndAndSample(parts[5])
			h.EndTime = end
			h.B.Sample = sample
		}
		return h

	case base.Type&typeSpinner != 0:
		s := &beatmap.Spinner{B: base}
		if len(parts) > 5 {
			s.EndTime = millis(parseFloat(parts[5], 0))
		}
		if len(parts) > 6 {
			s.B.Sample = parseSample(parts[6])
		}
		return s

	case base.Type&typeSlider != 0:
		s := &beatmap.Slider{B: base, Slides: 1}
		if len(parts) > 5 {
			s.PathSpec = parts[5]
		}
		if len(parts) > 6 {
			s.Slides = parseInt(parts[6], 1)
		}
		if len(parts) > 7 {
			s.Length = parseFloat(parts[7], 0)
		}
		if len(parts) > 8 && strings.TrimSpace(parts[8]) != "" {
			for _, n := range strings.Split(parts[8], "|") {
				s.EdgeSounds = append(s.EdgeSounds, beatmap.Additions(parseInt(n, 0)))
			}
		}
		if len(parts) > 9 && strings.TrimSpace(parts[9]) != "" {
			for _, pair := range strings.Split(parts[9], "|") {
				s.EdgeSets = append(s.EdgeSets, parseEdgePair(pair))
			}
		}
		if len(parts) > 10 {
			s.B.Sample = parseSample(parts[10])
		}
		return s

	default:
		c := &beatmap.Circle{B: base}
		if len(parts) > 5 {
			c.B.Sample = parseSample(parts[5])
		}
		return c
	}
}

// parseSample reads "normalSet:additionSet:index:volume:filename".
func parseSample(s string) beatmap.SampleInfo {
	parts := strings.Split(s, ":")
	get := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return beatmap.SampleInfo{
		NormalSet:   toSampleSet(parseInt(get(0), 0)),
		AdditionSet: toSampleSet(parseInt(get(1), 0)),
		Index:       parseInt(get(2), 0),
		Volume:      parseInt(get(3), 0),
		Filename:    strings.Trim(get(4), "\" "),
	}
}

func parseEdgePair(s string) beatmap.EdgePair {
	parts := strings.SplitN(s, ":", 2)
	pair := beatmap.EdgePair{NormalSet: toSampleSet(parseInt(parts[0], 0))}
	if len(parts) > 1 {
		pair.AdditionSet = toSampleSet(parseInt(parts[1], 0))
	}
	return pair
}

// parseEndAndSample reads a hold's "endTime:hitSample" tail.
func parseEndAndSample(s string) (time.Duration, beatmap.SampleInfo) {
	colon := strings.Index(s, ":")
	if colon < 0 {
		return millis(parseFloat(s, 0)), beatmap.SampleInfo{}
	}
	return millis(parseFloat(s[:colon], 0)), parseSample(s[colon+1:])
}

func toSampleSet(id int) beatmap.SampleSet {
	switch id {
	case 1:
		return beatmap.SampleNormal
	case 2:
		return beatmap.SampleSoft
	case 3:
		return beatmap.SampleDrum
	}
	return beatmap.SampleNone
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func splitKeyVal(line string) (string, string) {
	i := strings.Index(line, ":")
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		return def
	}
	return v
}

func parseFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err {
		return def
	}
	return v
}
