package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	sp "github.com/akeil/spritepack"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	app := kingpin.New("spritepack", "Pack sprites into sprite sheets")
	app.HelpFlag.Short('h')
	logLevel := app.Flag("log-level", "Log level").Default("warning").Enum("debug", "info", "warning", "error", "none")

	pack := app.Command("pack", "Pack images into sheets and write PNG and metadata files").Default()
	packSettings := addPackFlags(pack)
	var (
		packOut    = pack.Flag("output", "Base name for output files").Short('o').Default("sheet").String()
		packFormat = pack.Flag("format", "Metadata format").Short('f').Default("json").Enum("json", "named", "texturepacker")
	)

	preview := app.Command("preview", "Pack images and write a PDF contact sheet")
	previewSettings := addPackFlags(preview)
	var (
		previewOut   = preview.Flag("output", "PDF file to write").Short('o').Default("sheets.pdf").String()
		previewScale = preview.Flag("scale", "Enlarge sheet images by this factor").Default("1").Int()
		noOutline    = preview.Flag("no-outline", "Do not outline sprites").Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	sp.SetLogLevel(*logLevel)

	var err error
	switch command {
	case "pack":
		err = doPack(packSettings, *packOut, *packFormat)
	case "preview":
		err = doPreview(previewSettings, *previewOut, *previewScale, !*noOutline)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("%v Error: %v\n", crossmark, err)
		os.Exit(1)
	}
	os.Exit(0)
}
