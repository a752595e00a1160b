package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Verbose = kingpin.Flag("verbose", "Enable debug diagnostics").Short('v').Bool()

	Copy       = kingpin.Command("copy", "Copy hitsounds from a source map onto destination maps")
	CopySource = Copy.Arg("source", "Map to copy hitsounds from").Required().ExistingFile()
	CopyDests  = Copy.Arg("destination", "Maps to copy hitsounds onto").Required().ExistingFiles()
	Leniency   = Copy.Flag("leniency", "How far apart two instants can be and still match").Default("2ms").Short('l').Duration()
	SliderBody = Copy.Flag("slider-body", "Treat slider bodies as hitsound instants too").Bool()

	Reset      = kingpin.Command("reset", "Remove every hitsound from maps")
	ResetFiles = Reset.Arg("file", "Maps to reset").Required().ExistingFiles()
)

func Parse() string {
	kingpin.Version("0.1.0")
	return kingpin.Parse()
}
