package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputHandler tracks keyboard and mouse state between frames
type InputHandler struct {
	window           *glfw.Window
	currentKeys      map[glfw.Key]bool
	previousKeys     map[glfw.Key]bool
	currentMousePos  [2]float64
	previousMousePos [2]float64
	mouseDelta       [2]float64
	firstPoll        bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(window *glfw.Window) *InputHandler {
	return &InputHandler{
		window:       window,
		currentKeys:  make(map[glfw.Key]bool),
		previousKeys: make(map[glfw.Key]bool),
		firstPoll:    true,
	}
}

// Update refreshes the input state for this frame
func (ih *InputHandler) Update() {
	ih.previousKeys = make(map[glfw.Key]bool, len(ih.currentKeys))
	for k, v := range ih.currentKeys {
		ih.previousKeys[k] = v
	}

	ih.previousMousePos = ih.currentMousePos
	x, y := ih.window.GetCursorPos()
	ih.currentMousePos = [2]float64{x, y}

	if ih.firstPoll {
		// No meaningful delta before the first cursor read.
		ih.previousMousePos = ih.currentMousePos
		ih.firstPoll = false
	}
	ih.mouseDelta[0] = ih.currentMousePos[0] - ih.previousMousePos[0]
	ih.mouseDelta[1] = ih.currentMousePos[1] - ih.previousMousePos[1]

	for _, key := range trackedKeys {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

var trackedKeys = []glfw.Key{
	glfw.KeyW, glfw.KeyA, glfw.KeyS, glfw.KeyD,
	glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight,
	glfw.KeyEscape, glfw.KeyM,
}

// IsKeyDown reports whether the key is currently held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// GetMouseDelta returns the cursor movement since the last frame
func (ih *InputHandler) GetMouseDelta() [2]float64 {
	return ih.mouseDelta
}

// MoveInput reads the WASD/arrow state into a movement request
func (ih *InputHandler) MoveInput() MoveInput {
	return MoveInput{
		Forward: ih.IsKeyDown(glfw.KeyW) || ih.IsKeyDown(glfw.KeyUp),
		Back:    ih.IsKeyDown(glfw.KeyS) || ih.IsKeyDown(glfw.KeyDown),
		Left:    ih.IsKeyDown(glfw.KeyA) || ih.IsKeyDown(glfw.KeyLeft),
		Right:   ih.IsKeyDown(glfw.KeyD) || ih.IsKeyDown(glfw.KeyRight),
	}
}
