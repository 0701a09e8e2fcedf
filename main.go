package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional) or a file path")
	characterName := flag.String("character", "", "character to play (defaults to the first defined)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	muted := flag.Bool("mute", false, "disable sound effects")
	debugDraw := flag.Bool("debug", false, "overlay the raw physics shapes")
	watch := flag.Bool("watch", false, "hot-reload the character's power when its files change on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("pegfall")

	game := NewGame(*levelName, *characterName, *muted, *debugDraw, *watch)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
