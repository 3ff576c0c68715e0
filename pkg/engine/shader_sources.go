package engine

// Shader sources for the neon scene renderer

// Vertex shader for scene meshes
const neonVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 FragPos;
out vec3 Normal;
out vec2 TexCoord;

void main() {
    vec4 world = model * vec4(aPos, 1.0);
    FragPos = world.xyz;
    Normal = mat3(model) * aNormal;
    TexCoord = aTexCoord;
    gl_Position = projection * view * world;
}
`

// Fragment shader for scene meshes: unlit base color plus an
// emissive neon term scaled by per-node brightness, with distance fog
// fading into the background.
const neonFragmentShaderSource = `
#version 410 core
in vec3 FragPos;
in vec3 Normal;
in vec2 TexCoord;
out vec4 FragColor;

uniform vec4 baseColor;
uniform vec3 emissiveColor;
uniform float brightness;
uniform vec3 cameraPos;
uniform float fogDensity;
uniform vec3 fogColor;

void main() {
    vec3 color = baseColor.rgb + emissiveColor * brightness;

    // Exponential distance fog
    float dist = length(FragPos - cameraPos);
    float fog = 1.0 - exp(-fogDensity * dist);
    color = mix(color, fogColor, clamp(fog, 0.0, 1.0));

    FragColor = vec4(color, baseColor.a);
}
`
