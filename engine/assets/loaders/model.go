package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer/metadata"
)

var ErrInvalidOBJ = errors.New("invalid obj data")

type ModelLoader struct{}

func (ml *ModelLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	mesh, err := ParseOBJ(f, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var size uint64
	if fi, err := f.Stat(); err == nil {
		size = uint64(fi.Size())
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeModel,
		Name:     name,
		FullPath: path,
		DataSize: size,
		Data:     mesh,
	}, nil
}

func (ml *ModelLoader) Unload(*metadata.Resource) error {
	return nil
}

/**
 * @brief Reads Wavefront OBJ geometry. Only vertex positions ("v") and faces
 * ("f") are used; every other record is skipped. Faces with more than three
 * corners are fan triangulated around their first corner. Face corners may
 * be written as i, i/t, i//n or i/t/n, and negative indices count back
 * from the most recent vertex.
 * @param r The OBJ text.
 * @param name The name given to the mesh.
 * @return The mesh, already validated.
 */
func ParseOBJ(r io.Reader, name string) (*metadata.Mesh, error) {
	mesh := &metadata.Mesh{Name: name}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: %w: face with %d corners", lineNo, ErrInvalidOBJ, len(corners))
			}
			idx := make([]int, len(corners))
			for i, c := range corners {
				v, err := parseCorner(c, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx[i] = v
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Indices = append(mesh.Indices, idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

func parseVertex(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrInvalidOBJ, len(fields))
	}
	var xyz [3]float32
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: vertex coordinate %q", ErrInvalidOBJ, fields[i])
		}
		xyz[i] = float32(f)
	}
	return math.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

// parseCorner returns the zero based vertex index of one face corner.
// vertexCount is the number of vertices read so far.
func parseCorner(corner string, vertexCount int) (int, error) {
	pos, _, _ := strings.Cut(corner, "/")
	i, err := strconv.Atoi(pos)
	if err != nil {
		return 0, fmt.Errorf("%w: face index %q", ErrInvalidOBJ, corner)
	}
	switch {
	case i > 0:
		return i - 1, nil
	case i < 0:
		if vertexCount+i < 0 {
			return 0, fmt.Errorf("%w: relative index %d with %d vertices", ErrInvalidOBJ, i, vertexCount)
		}
		return vertexCount + i, nil
	}
	return 0, fmt.Errorf("%w: face index 0", ErrInvalidOBJ)
}
