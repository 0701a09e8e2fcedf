package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

func main() {
	levelPath := flag.String("level", "", "level file to open")
	outPath := flag.String("o", "level.json", "path Ctrl+S saves to")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	clipboardReady := true
	if err := clipboard.Init(); err != nil {
		log.Printf("editor: clipboard unavailable: %v", err)
		clipboardReady = false
	}

	app := NewApp(*levelPath, *outPath, clipboardReady)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("pegfall editor")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
