package parser

import "git.lost.host/meutraa/hscopy/internal/beatmap"

type Parser interface {
	Parse(file string) (*beatmap.Beatmap, error)
	Write(file string, b *beatmap.Beatmap) error
}
