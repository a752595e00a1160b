package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"git.lost.host/meutraa/hscopy/internal/config"
	"git.lost.host/meutraa/hscopy/internal/hitsound"
	"git.lost.host/meutraa/hscopy/internal/parser"
	"github.com/schollz/progressbar/v3"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	command := config.Parse()

	level := slog.LevelInfo
	if *config.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}

	switch command {
	case config.Copy.FullCommand():
		return copyHitsounds(psr, logger)
	case config.Reset.FullCommand():
		return resetHitsounds(psr, logger)
	}
	return nil
}

func copyHitsounds(psr parser.Parser, logger *slog.Logger) error {
	src, err := psr.Parse(*config.CopySource)
	if nil != err {
		return fmt.Errorf("unable to parse %v: %w", *config.CopySource, err)
	}
	srcInfo, err := os.Stat(*config.CopySource)
	if nil != err {
		return fmt.Errorf("unable to stat %v: %w", *config.CopySource, err)
	}

	var copier hitsound.Copier = &hitsound.DefaultCopier{
		Leniency:   *config.Leniency,
		SliderBody: *config.SliderBody,
		Log:        logger,
	}

	data, err := copier.Collect(src)
	if nil != err {
		return fmt.Errorf("unable to collect hitsounds from %v: %w", *config.CopySource, err)
	}
	logger.Info("collected hitsounds",
		"source", *config.CopySource, "hits", len(data.Hits), "sections", len(data.Sections))

	bar := progressbar.Default(int64(len(*config.CopyDests)), "applying")
	for _, dst := range *config.CopyDests {
		if sameFile(srcInfo, dst) {
			logger.Warn("destination is the source file, skipping", "path", dst)
			bar.Add(1)
			continue
		}
		b, err := psr.Parse(dst)
		if nil != err {
			return fmt.Errorf("unable to parse %v: %w", dst, err)
		}
		if err := copier.Apply(data, b); nil != err {
			return fmt.Errorf("unable to apply hitsounds to %v: %w", dst, err)
		}
		if err := psr.Write(dst, b); nil != err {
			return fmt.Errorf("unable to write %v: %w", dst, err)
		}
		bar.Add(1)
	}
	return nil
}

func resetHitsounds(psr parser.Parser, logger *slog.Logger) error {
	var copier hitsound.Copier = &hitsound.DefaultCopier{Log: logger}
	for _, file := range *config.ResetFiles {
		b, err := psr.Parse(file)
		if nil != err {
			return fmt.Errorf("unable to parse %v: %w", file, err)
		}
		copier.Reset(b)
		if err := psr.Write(file, b); nil != err {
			return fmt.Errorf("unable to write %v: %w", file, err)
		}
		logger.Info("reset hitsounds", "path", file)
	}
	return nil
}

// sameFile reports whether path refers to the same underlying file as the
// source, so a copy never clobbers what it is copying from.
func sameFile(src os.FileInfo, path string) bool {
	info, err := os.Stat(path)
	if nil != err {
		return false
	}
	return os.SameFile(src, info)
}
