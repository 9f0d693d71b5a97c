// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package color

// RGBToRGB normalizes raw r, g, b tokens through unit space and back to [0,255]
func RGBToRGB(r, g, b string) RGB {
	return RGB{
		R: Bound01(r, 255) * 255,
		G: Bound01(g, 255) * 255,
		B: Bound01(b, 255) * 255,
	}
}

// HSLToRGB converts raw hue (degrees), saturation and lightness (percent) tokens to RGB
func HSLToRGB(h, s, l string) RGB {
	hue := Bound01(h, 360)
	sat := Bound01(s, 100)
	light := Bound01(l, 100)

	var r, g, b float64
	if sat == 0 {
		// achromatic
		r, g, b = light, light, light
	} else {
		var q float64
		if light < 0.5 {
			q = light * (1 + sat)
		} else {
			q = light + sat - light*sat
		}
		p := 2*light - q
		r = hueToRGB(p, q, hue+1.0/3)
		g = hueToRGB(p, q, hue)
		b = hueToRGB(p, q, hue-1.0/3)
	}

	return RGB{R: r * 255, G: g * 255, B: b * 255}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
