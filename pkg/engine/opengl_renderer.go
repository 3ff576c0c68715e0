package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"neonhex/pkg/scene"
)

// meshBuffers is the uploaded GPU state for one mesh.
type meshBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NeonRenderer draws the retained scene graph with a single unlit
// neon shader pass. Meshes are uploaded lazily on first sight and
// cached for the life of the renderer.
type NeonRenderer struct {
	shaderProgram uint32
	meshes        map[*scene.MeshData]*meshBuffers

	modelLocation      int32
	viewLocation       int32
	projectionLocation int32
	baseColorLocation  int32
	emissiveLocation   int32
	brightnessLocation int32
	cameraPosLocation  int32
	fogDensityLocation int32
	fogColorLocation   int32

	fogDensity float32
	fogColor   mgl32.Vec3
}

// NewNeonRenderer initializes OpenGL state and compiles the neon
// shader program. The GL context must be current.
func NewNeonRenderer() (*NeonRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.01, 0.01, 0.03, 1.0)

	r := &NeonRenderer{
		meshes:     make(map[*scene.MeshData]*meshBuffers),
		fogDensity: 0.012,
		fogColor:   mgl32.Vec3{0.01, 0.01, 0.03},
	}

	var err error
	if r.shaderProgram, err = createShaderProgram(neonVertexShaderSource, neonFragmentShaderSource); err != nil {
		return nil, err
	}

	gl.UseProgram(r.shaderProgram)
	r.modelLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("model\x00"))
	r.viewLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("view\x00"))
	r.projectionLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("projection\x00"))
	r.baseColorLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("baseColor\x00"))
	r.emissiveLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("emissiveColor\x00"))
	r.brightnessLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("brightness\x00"))
	r.cameraPosLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("cameraPos\x00"))
	r.fogDensityLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("fogDensity\x00"))
	r.fogColorLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("fogColor\x00"))

	return r, nil
}

// upload creates the VAO/VBO/EBO for a mesh. Vertex layout is
// interleaved position, normal, uv.
func (r *NeonRenderer) upload(m *scene.MeshData) *meshBuffers {
	if buf, ok := r.meshes[m]; ok {
		return buf
	}

	count := m.VertexCount()
	interleaved := make([]float32, 0, count*8)
	for i := 0; i < count; i++ {
		interleaved = append(interleaved,
			m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2],
			m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2],
			m.UVs[2*i], m.UVs[2*i+1])
	}

	buf := &meshBuffers{indexCount: int32(len(m.Indices))}
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, gl.Ptr(interleaved), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	r.meshes[m] = buf
	return buf
}

// Render draws every visible mesh node of the graph.
func (r *NeonRenderer) Render(g *scene.Graph, view, projection mgl32.Mat4, cameraPos mgl32.Vec3, width, height int, globalBrightness float32) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.shaderProgram)
	gl.UniformMatrix4fv(r.viewLocation, 1, false, &view[0])
	gl.UniformMatrix4fv(r.projectionLocation, 1, false, &projection[0])
	gl.Uniform3f(r.cameraPosLocation, cameraPos.X(), cameraPos.Y(), cameraPos.Z())
	gl.Uniform1f(r.fogDensityLocation, r.fogDensity)
	gl.Uniform3f(r.fogColorLocation, r.fogColor.X(), r.fogColor.Y(), r.fogColor.Z())

	g.Walk(func(_ scene.NodeHandle, world scene.Transform, mesh *scene.MeshData, mat scene.Material) {
		buf := r.upload(mesh)
		model := world.Mat4()
		gl.UniformMatrix4fv(r.modelLocation, 1, false, &model[0])
		gl.Uniform4f(r.baseColorLocation, mat.Color.X(), mat.Color.Y(), mat.Color.Z(), mat.Color.W())
		gl.Uniform3f(r.emissiveLocation, mat.Emissive.X(), mat.Emissive.Y(), mat.Emissive.Z())
		gl.Uniform1f(r.brightnessLocation, mat.Brightness*globalBrightness)

		gl.BindVertexArray(buf.vao)
		gl.DrawElements(gl.TRIANGLES, buf.indexCount, gl.UNSIGNED_INT, nil)
	})
	gl.BindVertexArray(0)
}

// Close releases all GPU resources.
func (r *NeonRenderer) Close() {
	for _, buf := range r.meshes {
		gl.DeleteVertexArrays(1, &buf.vao)
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteBuffers(1, &buf.ebo)
	}
	gl.DeleteProgram(r.shaderProgram)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
