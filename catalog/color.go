// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors are the color names the catalog accepts, with the
// values matplotlib assigns them.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
}

// parseColor parses a color name or a "#rrggbb" hex string. The empty
// string returns nil, meaning "pick from the palette".
func parseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
		}
	}
	return nil, fmt.Errorf("bad color %q", s)
}
