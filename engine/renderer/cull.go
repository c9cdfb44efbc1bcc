package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spaghettifunk/wireframe/engine/math"
)

var ErrUnknownCullMode = errors.New("unknown cull mode")

/** @brief Selects which screen space winding is rejected. */
type CullMode uint8

const (
	/** @brief Every triangle is drawn. */
	CullNone CullMode = iota
	/** @brief Triangles with a positive signed area are culled. */
	CullBackface
	/** @brief Triangles with a negative signed area are culled. */
	CullFrontface
	cullModeMax
)

func (m CullMode) String() string {
	switch m {
	case CullNone:
		return "none"
	case CullBackface:
		return "backface"
	case CullFrontface:
		return "frontface"
	}
	return fmt.Sprintf("CullMode(%d)", uint8(m))
}

// Next cycles none -> backface -> frontface -> none.
func (m CullMode) Next() CullMode {
	return (m + 1) % cullModeMax
}

// ParseCullMode accepts the names produced by String, case insensitively.
// The empty string selects CullBackface.
func ParseCullMode(s string) (CullMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "back", "backface":
		return CullBackface, nil
	case "none", "off":
		return CullNone, nil
	case "front", "frontface":
		return CullFrontface, nil
	}
	return CullNone, fmt.Errorf("%w: %q", ErrUnknownCullMode, s)
}

func (m CullMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *CullMode) UnmarshalText(text []byte) error {
	v, err := ParseCullMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// SignedArea is the 2D cross product (p1-p0) x (p2-p0). Its sign gives
// the winding of the projected triangle.
func SignedArea(p0, p1, p2 math.Vec2) float32 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// Culls reports whether a projected triangle with the given signed area is
// rejected. A zero area triangle is never culled.
func (m CullMode) Culls(area float32) bool {
	switch m {
	case CullBackface:
		return area > 0
	case CullFrontface:
		return area < 0
	}
	return false
}
