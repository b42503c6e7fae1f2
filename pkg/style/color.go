package style

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-arbor/arbor/pkg/errors"
)

// ParseColor resolves a color from an SVG 1.1 color name ("tomato",
// "SteelBlue") or a hex literal ("#rgb", "#rrggbb", "#rrggbbaa").
// Unresolvable input fails with invalid_argument.
func ParseColor(s string) (color.RGBA, error) {
	const op = "style.ParseColor"

	if strings.HasPrefix(s, "#") {
		c, err := parseHex(s[1:])
		if err != nil {
			return color.RGBA{}, errors.New(op, errors.KindInvalidArgument, err)
		}
		return c, nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, errors.Newf(op, errors.KindInvalidArgument, "unknown color %q", s)
}

// MustParseColor is ParseColor that panics on invalid input. Intended for
// color literals in static trees.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (color.RGBA, error) {
	switch len(s) {
	case 3: // #rgb
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if !okR || !okG || !okB {
			return color.RGBA{}, errors.Newf("style.parseHex", errors.KindInvalidArgument, "bad hex color #%s", s)
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, nil
	case 6, 8: // #rrggbb, #rrggbbaa
		var bytes [4]byte
		bytes[3] = 0xff
		for i := 0; i < len(s)/2; i++ {
			hi, okHi := hexNibble(s[2*i])
			lo, okLo := hexNibble(s[2*i+1])
			if !okHi || !okLo {
				return color.RGBA{}, errors.Newf("style.parseHex", errors.KindInvalidArgument, "bad hex color #%s", s)
			}
			bytes[i] = hi<<4 | lo
		}
		return color.RGBA{R: bytes[0], G: bytes[1], B: bytes[2], A: bytes[3]}, nil
	default:
		return color.RGBA{}, errors.Newf("style.parseHex", errors.KindInvalidArgument, "hex color #%s has %d digits, want 3, 6 or 8", s, len(s))
	}
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
