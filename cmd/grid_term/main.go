// grid_term 在终端中显示网格，鼠标悬停高亮
//
// 按键:
//
//	p        切换交互模式
//	[ ]      调整内缩
//	方向键   调整宽高
//	Esc / Ctrl-C 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/hovergrid/pkg/components"
	"github.com/decker502/hovergrid/pkg/config"
	"github.com/decker502/hovergrid/pkg/render"
	"github.com/decker502/hovergrid/pkg/systems"
	"github.com/decker502/hovergrid/pkg/utils"
)

var (
	configPath = flag.String("config", "", "网格配置文件路径（默认使用内置默认值）")
	cellCols   = flag.Int("cols", 4, "每个格子占用的字符列数")
	cellRows   = flag.Int("rows", 2, "每个格子占用的字符行数")
)

// termGrid 终端网格应用
type termGrid struct {
	screen   tcell.Screen
	camera   *components.CameraComponent
	frame    *systems.FrameRenderer
	renderer *render.TerminalRenderer

	interactive bool
	pointerX    float64
	pointerY    float64
	hasPointer  bool
	lastStats   systems.FrameStats
}

func newTermGrid(screen tcell.Screen, cfg config.GridConfig) *termGrid {
	camera := &components.CameraComponent{
		UnitsToPixelsX: float64(*cellCols),
		UnitsToPixelsY: float64(*cellRows),
	}
	g := &termGrid{
		screen:      screen,
		camera:      camera,
		frame:       systems.NewFrameRenderer(cfg),
		renderer:    render.NewTerminalRenderer(screen, camera),
		interactive: true,
	}
	g.handleResize()
	return g
}

func (g *termGrid) handleResize() {
	w, h := g.screen.Size()
	g.camera.ViewportWidth = float64(w)
	g.camera.ViewportHeight = float64(h)
}

// handleInput 返回 false 表示退出
func (g *termGrid) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.edit(config.EditWidthDecrease)
		case tcell.KeyRight:
			g.edit(config.EditWidthIncrease)
		case tcell.KeyDown:
			g.edit(config.EditHeightDecrease)
		case tcell.KeyUp:
			g.edit(config.EditHeightIncrease)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'p':
				g.interactive = !g.interactive
			case '[':
				g.edit(config.EditInsetDecrease)
			case ']':
				g.edit(config.EditInsetIncrease)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		// 指针取字符格中心
		wx, wy, err := utils.ScreenToWorld(g.camera, float64(x)+0.5, float64(y)+0.5)
		g.pointerX, g.pointerY = wx, wy
		g.hasPointer = err == nil

	case *tcell.EventResize:
		g.handleResize()
		g.screen.Sync()
	}

	return true
}

func (g *termGrid) edit(action config.EditAction) {
	g.frame.SetConfig(g.frame.Config().Apply(action))
}

func (g *termGrid) draw() {
	g.screen.Clear()

	g.lastStats = g.frame.Tick(systems.FrameInput{
		PointerX:    g.pointerX,
		PointerY:    g.pointerY,
		Interactive: g.interactive && g.hasPointer,
	}, g.renderer)

	cfg := g.frame.Config()
	status := fmt.Sprintf("grid %dx%d inset %.2f  cell %s  draws %d  [p] play [ ] inset arrows size Esc quit",
		cfg.Width, cfg.Height, cfg.BorderInset, g.lastStats.Highlighted, g.lastStats.DrawCalls)
	if !g.interactive {
		status = "paused  " + status
	}
	if err := g.frame.Mesh().LastError; err != nil {
		status += "  error: " + err.Error()
	}
	drawText(g.screen, 0, 0, status, tcell.StyleDefault.Reverse(true))

	g.screen.Show()
}

// drawText 在指定行写入文本，超出屏幕宽度的部分截断
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (g *termGrid) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.draw()
		}
	}
}

func main() {
	flag.Parse()

	// tcell 占用终端，日志不能写到 stdout/stderr
	log.SetOutput(io.Discard)

	appConfig := config.DefaultAppConfig()
	if *configPath != "" {
		cfg, err := config.LoadAppConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		appConfig = cfg
	}
	if *cellCols <= 0 || *cellRows <= 0 {
		fmt.Fprintf(os.Stderr, "cols and rows must be positive\n")
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.Fini()

	newTermGrid(screen, appConfig.Grid).run()
}
