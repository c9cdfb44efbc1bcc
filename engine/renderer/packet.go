package renderer

import (
	"image/color"

	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer/components"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

/** @brief One mesh instance queued for a frame. */
type GeometryRenderData struct {
	Mesh      *metadata.Mesh
	Transform *math.Transform
	Options   DrawOptions
}

/** @brief Everything drawn in one frame, in draw order. */
type RenderPacket struct {
	DeltaTime float64
	/** @brief The camera every geometry is projected through. Nothing is drawn without one. */
	Camera *components.Camera
	/** @brief The clear color of the frame. */
	Background color.RGBA
	Geometries []*GeometryRenderData
	/** @brief Status lines the game wants shown on the overlay. */
	Overlay []string
}

func (p *RenderPacket) Push(mesh *metadata.Mesh, t *math.Transform, opts DrawOptions) {
	p.Geometries = append(p.Geometries, &GeometryRenderData{Mesh: mesh, Transform: t, Options: opts})
}

func (p *RenderPacket) Reset(deltaTime float64) {
	p.DeltaTime = deltaTime
	p.Geometries = p.Geometries[:0]
	p.Overlay = p.Overlay[:0]
}

// DrawFrame draws every queued geometry in order through the packet's
// camera and returns the combined counters.
func DrawFrame(dst Surface, packet *RenderPacket) Stats {
	var stats Stats
	if packet.Camera == nil {
		return stats
	}
	for _, g := range packet.Geometries {
		stats = stats.Add(DrawMesh(dst, g.Mesh, g.Transform, packet.Camera, g.Options))
	}
	return stats
}
