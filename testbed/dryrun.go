package testbed

import (
	"fmt"
	"io"

	"github.com/spaghettifunk/wireframe/engine/assets"
	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/spaghettifunk/wireframe/engine/renderer/canvas"
)

// DryRun draws the scene once into a recorder and writes per entity
// counters to w. Nothing is rasterized.
func DryRun(scene *assets.Scene, w io.Writer) (renderer.Stats, error) {
	rec := canvas.NewRecorder()
	var total renderer.Stats

	for _, e := range scene.Entities {
		rec.Reset()
		s := renderer.DrawMesh(rec, e.Mesh, e.Transform, scene.Camera, e.Options)
		total = total.Add(s)
		if _, err := fmt.Fprintf(w, "%-16s triangles=%d drawn=%d dotted=%d culled=%d degenerate=%d lines=%d fills=%d\n",
			e.Name, s.Triangles, s.Drawn, s.Dotted, s.Culled, s.Degenerate, len(rec.Lines()), len(rec.Fills())); err != nil {
			return total, err
		}
	}

	_, err := fmt.Fprintf(w, "%-16s triangles=%d drawn=%d dotted=%d culled=%d degenerate=%d\n",
		"total", total.Triangles, total.Drawn, total.Dotted, total.Culled, total.Degenerate)
	return total, err
}
