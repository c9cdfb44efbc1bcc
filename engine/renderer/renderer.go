package renderer

import (
	"image/color"

	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer/components"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

/**
 * @brief Projected coordinates are clamped to this many viewport sizes on
 * either side of the origin, which bounds the length of any line walk.
 */
const GuardBand float32 = 4.0

/** @brief Controls how DrawMesh treats each triangle. */
type DrawOptions struct {
	/** @brief Which winding is rejected. */
	Cull CullMode
	/** @brief Draw culled triangles with dotted edges instead of skipping them. */
	BackEdges bool
	/** @brief The edge color. */
	Color color.RGBA
	/** @brief Fill visible triangles with the half intensity edge color. Ignored with BackEdges. */
	Fill bool
}

/** @brief Per call counters returned by DrawMesh. */
type Stats struct {
	/** @brief Triangles visited. */
	Triangles int
	/** @brief Triangles drawn with solid edges. */
	Drawn int
	/** @brief Culled triangles drawn with dotted edges. */
	Dotted int
	/** @brief Triangles rejected by the cull mode, dotted or not. */
	Culled int
	/** @brief Triangles skipped because a vertex projected to a non-finite point. */
	Degenerate int
}

func (s Stats) Add(other Stats) Stats {
	return Stats{
		Triangles:  s.Triangles + other.Triangles,
		Drawn:      s.Drawn + other.Drawn,
		Dotted:     s.Dotted + other.Dotted,
		Culled:     s.Culled + other.Culled,
		Degenerate: s.Degenerate + other.Degenerate,
	}
}

// HalveColor halves each RGB channel and keeps alpha.
func HalveColor(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

/**
 * @brief Transforms, projects and draws every triangle of mesh into dst.
 * The mesh must satisfy Mesh.Validate; an out of range index panics.
 * mesh, t and cam are only read.
 * @param dst The surface to draw into.
 * @param mesh The geometry to draw.
 * @param t The model transform. nil means identity.
 * @param cam The camera to project through.
 * @param opts Cull, back edge and fill settings.
 * @return Counters describing what was drawn.
 */
func DrawMesh(dst Surface, mesh *metadata.Mesh, t *math.Transform, cam *components.Camera, opts DrawOptions) Stats {
	var stats Stats

	w, h := float32(cam.Width), float32(cam.Height)
	band := GuardBand * max(w, h)
	fill := HalveColor(opts.Color)

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		stats.Triangles++

		var p [3]math.Vec2
		finite := true
		for k := 0; k < 3; k++ {
			v := t.Apply(mesh.Vertices[mesh.Indices[i+k]])
			p[k] = math.Project(v, w, h, cam.FOV)
			if !p[k].IsFinite() {
				finite = false
				break
			}
		}
		if !finite {
			stats.Degenerate++
			continue
		}

		// Winding is decided on the projected points; only the drawn
		// copies are clamped, since clamping can flip the sign.
		area := SignedArea(p[0], p[1], p[2])
		for k := 0; k < 3; k++ {
			p[k].X = math.Clamp(p[k].X, -band, band)
			p[k].Y = math.Clamp(p[k].Y, -band, band)
		}

		dotted := false
		if opts.Cull.Culls(area) {
			stats.Culled++
			if !opts.BackEdges {
				continue
			}
			dotted = true
		}

		if dotted {
			stats.Dotted++
			for k := 0; k < 3; k++ {
				a, b := p[k], p[(k+1)%3]
				DrawDottedLine(dst, int(a.X), int(a.Y), int(b.X), int(b.Y), opts.Color)
			}
			continue
		}

		stats.Drawn++
		if opts.Fill && !opts.BackEdges {
			dst.FillTriangle(p, fill)
		}
		for k := 0; k < 3; k++ {
			a, b := p[k], p[(k+1)%3]
			dst.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), opts.Color)
		}
	}
	return stats
}
