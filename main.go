package main

import (
	"flag"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiltmaze/common"
	"github.com/milk9111/tiltmaze/levels"
	log "github.com/sirupsen/logrus"
)

func main() {
	level := flag.Int("level", 1, "level index to start at (levels/level<N>.txt)")
	simulator := flag.Bool("simulator", defaultSimulator(), "steer toward the pointer instead of reading the accelerometer")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload prefabs/tuning.yaml from disk when it changes")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if !levels.Exists(*level) {
		log.WithField("level", *level).Fatal("level not bundled")
	}

	ebiten.SetTPS(common.TicksPerSecond)
	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("tiltmaze")

	game, err := NewGame(GameConfig{
		Level:     *level,
		Simulator: *simulator,
		Debug:     *debug,
		Watch:     *watch,
	})
	if err != nil {
		log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
}

// defaultSimulator is true everywhere except on phones, where a real
// accelerometer is expected.
func defaultSimulator() bool {
	return runtime.GOOS != "android" && runtime.GOOS != "ios"
}
