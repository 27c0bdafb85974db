//go:build ignore

//kage:unit pixels

package main

const Pi = 3.141592

// Uniform variables.
var Time float

func ColorRamp(t float) vec4 {
	var colors [3]vec4
	colors[0] = vec4(1, 0.9, 0.8, 1)
	colors[1] = vec4(0.8, 0.9, 1, 1)
	colors[2] = vec4(1, 0.9, 0.8, 1)

	segment := (1.0 / 2.0)

	for i := 0; i < 2; i++ {
		limit := float(i+1) * segment
		if t < limit {
			t = (t - float(i)*segment) / segment
			return mix(colors[i], colors[i+1], t)
		}
	}

	return colors[2]
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	pos := dstPos.xy / imageDstSize()

	pulse := 0.85 + 0.15*sin(Time*2)
	ramp := ColorRamp(mod(pos.x+Time*0.1, 1))

	return color * ramp * pulse
}
