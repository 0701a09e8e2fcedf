package main

import (
	"log"

	"github.com/arcadebit/pegfall/assets"
	"github.com/arcadebit/pegfall/obj"
)

// soundPlayer plays the embedded sound effects. A fresh audio.Player is built
// per playback so overlapping peg hits don't cut each other off; decode
// failures are logged once and the name is blacklisted.
type soundPlayer struct {
	muted  bool
	failed map[string]bool
}

func newSoundPlayer(muted bool) *soundPlayer {
	return &soundPlayer{muted: muted, failed: map[string]bool{}}
}

func (a *soundPlayer) PlaySound(name string, opts obj.SoundOptions) {
	if a == nil || a.muted || a.failed[name] {
		return
	}
	p, err := assets.NewSoundPlayer(name)
	if err != nil {
		log.Printf("audio: %s: %v", name, err)
		a.failed[name] = true
		return
	}
	vol := opts.Volume
	if vol <= 0 || vol > 1 {
		vol = 1
	}
	p.SetVolume(vol)
	p.Play()
}
