package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	ptimage "github.com/AlexStarov/ptraster-GoLang-lib/image"
	"github.com/AlexStarov/ptraster-GoLang-lib/printer"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ptprint: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ptprint", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config")
	addr := fs.String("addr", "", "printer host (overrides config)")
	model := fs.String("model", "", "printer model, e.g. P950NW (skips detection)")
	tiff := fs.Bool("tiff", false, "use TIFF-compressed rows")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no image files given")
	}

	cfg := defaultPrintConfig()
	if *configPath != "" {
		loaded, err := loadPrintConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Address = *addr
	}
	if *model != "" {
		cfg.Model = printer.Model(*model)
		cfg.Job.Model = cfg.Model
	}
	if *tiff {
		cfg.Job.Encoding = printer.EncodingTIFF
	}
	if cfg.Address == "" {
		return fmt.Errorf("no printer address given")
	}

	p, err := printer.NewNetPrinter(cfg.Address)
	if err != nil {
		return err
	}
	defer p.CloseConnection()

	if cfg.Model != printer.ModelUnknown {
		p.SetModel(cfg.Model)
	}
	p.SetEncoding(cfg.Job.Encoding)
	p.SetMargins(cfg.Job.TopMargin, cfg.Job.BottomMargin)

	// All files go into one job so the printer feeds pages between them.
	conv := &ptimage.Converter{StripeSize: printer.StripeSize(p.Config().Model)}
	sources := make([]ptimage.Source, 0, fs.NArg())
	for _, path := range fs.Args() {
		src, err := loadImage(conv, path)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}
	return p.Print(sources...)
}

func loadImage(conv *ptimage.Converter, path string) (ptimage.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return conv.Prepare(img), nil
}
