// spray10k runs a hundred sprays of a hundred particles each, every one
// retriggered the moment it expires. A stress test for the spray
// evaluation and render submission path.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lanternworks/glint"
	"github.com/lanternworks/glint/canvas"
)

const (
	screenW  = 1280
	screenH  = 720
	gridCols = 10
	gridRows = 10
	perSpray = 100
)

type cell struct {
	spray *glint.Spray
	sink  *canvas.Sink
	n     int
}

// Game implements ebiten.Game.
type Game struct {
	cells []*cell
	clock *glint.Clock
}

func main() {
	spark := ebiten.NewImage(3, 3)
	spark.Fill(color.White)

	cellW := float64(screenW) / gridCols
	cellH := float64(screenH) / gridRows

	cells := make([]*cell, 0, gridCols*gridRows)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			sink := canvas.NewSink(nil, glint.Vec2{
				X: cellW/2 + float64(col)*cellW,
				Y: cellH/2 + float64(row)*cellH,
			})
			sink.Blend = canvas.BlendAdd
			sink.Tint = canvas.Color{
				R: 0.5 + rand.Float64()*0.5,
				G: 0.5 + rand.Float64()*0.5,
				B: 0.5 + rand.Float64()*0.5,
				A: 1,
			}

			cfg := glint.DefaultSprayConfig()
			cfg.Particles = perSpray
			cfg.MaxStartJitter = 0.75
			cfg.Distance = glint.Range{Min: 10, Max: cellW / 2}
			cfg.Symbols = func(string) any { return spark }
			cfg.Sink = sink

			spray, err := glint.NewSpray(cfg)
			if err != nil {
				log.Fatal(err)
			}
			cells = append(cells, &cell{spray: spray, sink: sink})
		}
	}

	g := &Game{cells: cells, clock: glint.NewClock()}

	ebiten.SetWindowTitle("Glint \u2014 10k Particles")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func (g *Game) Update() error {
	now := g.clock.Now()
	for _, c := range g.cells {
		if !c.spray.Active() {
			c.n++
			c.spray.SetTrigger(c.n, now)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.clock.Now()
	alive := 0
	for _, c := range g.cells {
		c.sink.Target = screen
		c.spray.Tick(now)
		alive += c.spray.Alive()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f  alive: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), alive))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}
