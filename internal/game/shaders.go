package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"raindrop/internal/drop"
)

// Fullscreen quad vertex shader: aPos in clip space, vUv in 0..1 with origin bottom-left.
const sceneVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

out vec2 vUv;

void main() {
    vUv = aPos * 0.5 + 0.5;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Scene fragment shader: gradient sky, wavy water line, falling drop with
// squash and stretch, and particle bursts for splashes and catches.
// The cycle constants are shared with the game logic through the defines.
var sceneFragSrc = fmt.Sprintf(`#version 410 core

#define SPEED %.4f
#define CYCLE %.4f
#define DROP_START %.4f
#define BASE_WATER_PX %.4f
#define EASE_RATE %.4f
`, drop.SpeedFactor, drop.CyclePeriod, drop.DropStartY, drop.BaseWaterPixels, drop.WaterEaseRate) + `
uniform float uTime;
uniform vec2 uResolution;
uniform vec3 uColorA;
uniform vec3 uColorB;
uniform float uWaterLevel;
uniform float uTargetWaterLevel;
uniform float uLastImpactTime;
uniform float uJustHitWater;
uniform vec2 uMouseClick;
uniform float uClickTime;
uniform float uDropBurst;
uniform float uBurstY;

in vec2 vUv;
out vec4 FragColor;

float curve(float x, float frequency, float amplitude) {
    return sin(x * frequency + uTime) * amplitude;
}

float particle(vec2 uv, vec2 center, float size, float fade) {
    float dist = length(uv - center);
    return smoothstep(size, size * 0.8, dist) * fade;
}

// Twelve particles fanning upward over half a second.
float burst(vec2 uv, vec2 center, float size, float since) {
    float b = 0.0;
    if (since >= 0.0 && since < 0.5) {
        float phase = since * 2.0;
        float fade = 1.0 - smoothstep(0.0, 1.0, phase);
        for (float i = 0.0; i < 12.0; i++) {
            float angle = (i / 12.0) * 6.28 + phase * 2.0;
            vec2 offset = vec2(cos(angle), abs(sin(angle)) * 0.5) * phase * 0.2;
            b += particle(uv, center + offset, size * 0.3, fade);
        }
    }
    return b;
}

float waterLineY() {
    float level = mix(uWaterLevel, uTargetWaterLevel,
        smoothstep(0.0, 1.0, (uTime - uLastImpactTime) * EASE_RATE));
    return BASE_WATER_PX / uResolution.y + level;
}

float raindrop(vec2 uv, float size) {
    float line = waterLineY();
    float dropY = DROP_START - mod(uTime * SPEED, CYCLE);
    bool landed = dropY < line;

    if (!landed && uDropBurst > 0.5) {
        return burst(uv, vec2(uMouseClick.x, uBurstY), size * 1.5, uTime - uClickTime);
    }
    if (landed) {
        dropY = line;
    }

    vec2 pos = (uv - vec2(0.5, dropY)) / size;
    float dist = dropY - line;
    if (dist > 0.0 && dist < 0.1) {
        float k = 1.0 - dist * 10.0;
        pos.y *= 1.0 - k * 0.3;
        pos.x *= 1.0 + k * 0.4;
    }

    float shape;
    if (pos.y < 0.0) {
        shape = length(pos);
    } else {
        float width = max(1.0 - pos.y * 0.8, 0.1);
        shape = abs(pos.x) / width + pos.y;
    }

    float splash = 0.0;
    if (uJustHitWater > 0.5 || (landed && dist > -0.001)) {
        splash = burst(uv, vec2(0.5, line), size, uTime - uLastImpactTime);
    }
    float body = landed ? 0.0 : smoothstep(1.0, 0.8, shape);
    return body + splash;
}

float waterline(vec2 uv) {
    float wave = curve(uv.x, 6.0, 0.005) + curve(uv.x, 12.0, 0.003) + curve(uv.x, 18.0, 0.002);
    return smoothstep(0.0, 0.002, uv.y - waterLineY() - wave);
}

void main() {
    float noise = sin(vUv.y * 10.0 + uTime) * 0.1;
    vec3 sky = mix(uColorA, uColorB, vUv.y + noise);
    vec3 col = mix(vec3(0.2, 0.4, 0.8), sky, waterline(vUv));
    col = mix(col, vec3(0.7, 0.8, 0.9), clamp(raindrop(vUv, 0.03), 0.0, 1.0));
    FragColor = vec4(col, 1.0);
}
` + "\x00"

// HUD text: quads in framebuffer pixels (origin top-left) sampling the font atlas.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vGlyphUV;
out vec4 vTint;

void main() {
    vec2 clip = aPos / uResolution * vec2(2.0, -2.0) + vec2(-1.0, 1.0);
    gl_Position = vec4(clip, 0.0, 1.0);
    vGlyphUV = aUV;
    vTint = aColor;
}
` + "\x00"

const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vGlyphUV;
in vec4 vTint;
out vec4 FragColor;

void main() {
    vec4 ink = texture(uFontTex, vGlyphUV) * vTint;
    if (ink.a < 0.01) discard;
    FragColor = ink;
}
` + "\x00"

// infoLog reads a shader or program log with the matching pair of getters.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]byte, n)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compileShader(source string, kind uint32) (uint32, error) {
	id := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	if gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(id, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile shader: %s", msg)
	}
	return id, nil
}

// linkProgram compiles and links a vertex/fragment pair. name only labels errors.
func linkProgram(name, vertSrc, fragSrc string) (uint32, error) {
	stages := []struct {
		kind  uint32
		label string
		src   string
	}{
		{gl.VERTEX_SHADER, "vertex", vertSrc},
		{gl.FRAGMENT_SHADER, "fragment", fragSrc},
	}
	prog := gl.CreateProgram()
	var shaders []uint32
	// Attached shaders are freed with the program.
	defer func() {
		for _, id := range shaders {
			gl.DeleteShader(id)
		}
	}()
	for _, st := range stages {
		id, err := compileShader(st.src, st.kind)
		if err != nil {
			gl.DeleteProgram(prog)
			return 0, fmt.Errorf("%s %s: %w", name, st.label, err)
		}
		gl.AttachShader(prog, id)
		shaders = append(shaders, id)
	}
	gl.LinkProgram(prog)

	var ok int32
	if gl.GetProgramiv(prog, gl.LINK_STATUS, &ok); ok == gl.FALSE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link %s: %s", name, msg)
	}
	return prog, nil
}
