package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"neonhex/internal/logger"
	"neonhex/pkg/config"
	"neonhex/pkg/scene"
	"neonhex/pkg/terrain"
)

// Engine owns the window, the generated terrain scene and the frame
// loop that tracks the camera and reveals petal geometry.
type Engine struct {
	window   *glfw.Window
	config   *config.Config
	logger   *logger.Logger
	graph    *scene.Graph
	field    *terrain.Field
	grid     *terrain.Grid
	reveal   *terrain.Reveal
	camera   *Camera
	intro    *Intro
	renderer *NeonRenderer
	input    *InputHandler
	audio    *AudioEngine

	isRunning   bool
	audioMuted  bool
	lastUpdate  time.Time
	frameRate   int
	introOffset float32
	brightness  float32
}

// NewEngine creates the viewer: window, GL context, terrain field,
// disc grid, reveal engine, camera and audio.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Graphics.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	window, err := glfw.CreateWindow(
		cfg.Graphics.Width,
		cfg.Graphics.Height,
		"neonhex",
		monitor,
		nil,
	)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if cfg.Graphics.VSync {
		glfw.SwapInterval(1)
	}

	renderer, err := NewNeonRenderer()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize renderer: %v", err)
	}

	mode, err := terrain.ParseRevealMode(cfg.Graphics.RenderMode)
	if err != nil {
		log.Warnf("%v, falling back to full", err)
		mode = terrain.ModeFull
	}

	start := time.Now()
	field := terrain.BuildField(&cfg.Grid)
	graph := scene.NewGraph()
	grid := terrain.Generate(graph, field, &cfg.Grid)
	log.Infof("Generated %d hexes in %v", field.Len(), time.Since(start))

	reveal := terrain.NewReveal(graph, grid, &cfg.Petal, mode)

	audio, err := NewAudioEngine(cfg.Audio)
	if err != nil {
		log.Warnf("Audio disabled: %v", err)
		audio = nil
	}

	engine := &Engine{
		window:     window,
		config:     cfg,
		logger:     log,
		graph:      graph,
		field:      field,
		grid:       grid,
		reveal:     reveal,
		camera:     NewCamera(cfg.Camera, field),
		intro:      NewIntro(cfg.Intro),
		renderer:   renderer,
		input:      NewInputHandler(window),
		audio:      audio,
		frameRate:  cfg.Graphics.FrameRate,
		brightness: 1,
	}
	return engine, nil
}

// Run starts the main loop
func (e *Engine) Run() {
	e.isRunning = true
	e.lastUpdate = time.Now()

	for e.isRunning && !e.window.ShouldClose() {
		currentTime := time.Now()
		deltaTime := float32(currentTime.Sub(e.lastUpdate).Seconds())
		e.lastUpdate = currentTime

		e.processInput(deltaTime)
		e.update(deltaTime)
		e.render()

		e.window.SwapBuffers()
		glfw.PollEvents()

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(currentTime)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

// processInput handles user input
func (e *Engine) processInput(deltaTime float32) {
	e.input.Update()

	if e.input.IsKeyDown(glfw.KeyEscape) {
		e.isRunning = false
	}
	if e.input.IsKeyPressed(glfw.KeyM) {
		e.audioMuted = !e.audioMuted
		if e.audio != nil {
			e.audio.SetMuted(e.audioMuted)
		}
	}

	// The player takes over only after the intro sweep.
	if !e.intro.Done() {
		return
	}
	delta := e.input.GetMouseDelta()
	e.camera.ApplyLook(float32(delta[0]), float32(delta[1]))
	e.camera.Move(e.input.MoveInput(), deltaTime)
}

// update advances the intro, grounds the camera and reveals petals
func (e *Engine) update(deltaTime float32) {
	frame := e.intro.Update(deltaTime)
	e.introOffset = frame.PitchOffset
	e.brightness = frame.Brightness

	e.camera.FollowTerrain(e.field)

	if frame.FireReveal {
		e.reveal.Track(e.camera.PlanarPosition())
		e.reveal.RevealAround(e.reveal.State.Current)
		e.logger.Debugf("Initial reveal at %v", e.reveal.State.Current)
	} else if e.intro.Done() && e.reveal.Track(e.camera.PlanarPosition()) {
		e.reveal.RevealAround(e.reveal.State.Current)
	}

	e.grid.UpdatePoleFade(e.graph, e.camera.PlanarPosition(),
		e.config.Grid.PoleFade, e.config.Grid.PoleMinAlpha)

	if e.audio != nil {
		h := e.field.InterpolateHeight(e.camera.PlanarPosition())
		e.audio.SetHeight(h / e.config.Grid.MaxHeight)
	}
}

// render draws the current frame
func (e *Engine) render() {
	width, height := e.window.GetFramebufferSize()
	if height == 0 {
		return
	}
	projection := mgl32.Perspective(
		mgl32.DegToRad(60),
		float32(width)/float32(height),
		0.1, 500,
	)
	view := e.camera.ViewMatrix(e.introOffset)
	e.renderer.Render(e.graph, view, projection, e.camera.Position, width, height, e.brightness)
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down engine...")
	if e.audio != nil {
		e.audio.Shutdown()
	}
	e.renderer.Close()
	glfw.Terminate()
}
