package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/render"
)

// maxParallelDecode bounds concurrent bundle decoding
const maxParallelDecode = 4

// Bundle is one YAML asset file
type Bundle struct {
	Meshes    []MeshSpec     `yaml:"meshes"`
	Materials []MaterialSpec `yaml:"materials"`
}

// MeshSpec describes a mesh as a closed outline or explicit vertices and edges
type MeshSpec struct {
	Name     string       `yaml:"name"`
	Outline  [][2]float32 `yaml:"outline"`
	Vertices [][3]float32 `yaml:"vertices"`
	Edges    [][2]int     `yaml:"edges"`
}

// MaterialSpec describes a material bound to a registered shader
type MaterialSpec struct {
	Name   string  `yaml:"name"`
	Shader string  `yaml:"shader"`
	Color  Hex     `yaml:"color"`
	Shine  float32 `yaml:"shine"`
	Sort   int     `yaml:"sort"`
}

// Hex is a "#rrggbb" color in YAML
type Hex render.RGB

func (h *Hex) UnmarshalYAML(n *yaml.Node) error {
	s := strings.TrimPrefix(n.Value, "#")
	if len(s) != 6 {
		return fmt.Errorf("line %d: color %q is not #rrggbb", n.Line, n.Value)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("line %d: color %q: %w", n.Line, n.Value, err)
	}
	*h = Hex{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	return nil
}

// Build converts the spec into a mesh
func (s MeshSpec) Build() (*render.Mesh, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("mesh without name: %w", render.ErrInvalidMesh)
	}
	if len(s.Outline) > 0 {
		if len(s.Outline) < 2 {
			return nil, fmt.Errorf("mesh %q outline needs 2 points: %w", s.Name, render.ErrInvalidMesh)
		}
		pts := make([]mgl32.Vec2, len(s.Outline))
		for i, p := range s.Outline {
			pts[i] = mgl32.Vec2(p)
		}
		return render.NewLineLoop(s.Name, pts), nil
	}
	verts := make([]mgl32.Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		verts[i] = mgl32.Vec3(v)
	}
	return render.NewMesh(s.Name, verts, s.Edges)
}

// DecodeBundle parses one bundle, rejecting unknown keys
func DecodeBundle(data []byte) (*Bundle, error) {
	var b Bundle
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &b, nil
}

// LoadFS decodes every bundle matching pattern concurrently, then registers meshes before materials
// Materials reference shaders, which must already be registered
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS, pattern string) error {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("glob %q: %w", pattern, err)
	}

	bundles := make([]*Bundle, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDecode)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return fmt.Errorf("read bundle %q: %w", path, err)
			}
			b, err := DecodeBundle(data)
			if err != nil {
				return fmt.Errorf("decode bundle %q: %w", path, err)
			}
			bundles[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, b := range bundles {
		for _, ms := range b.Meshes {
			m, err := ms.Build()
			if err != nil {
				return fmt.Errorf("bundle %q: %w", paths[i], err)
			}
			if err := c.Register(m.Name, engine.ResMesh, m); err != nil {
				return fmt.Errorf("bundle %q: %w", paths[i], err)
			}
		}
	}
	for i, b := range bundles {
		for _, spec := range b.Materials {
			if err := c.registerMaterial(spec); err != nil {
				return fmt.Errorf("bundle %q: %w", paths[i], err)
			}
		}
	}

	c.log.Info("asset bundles loaded", zap.Int("bundles", len(paths)), zap.Int("resources", c.Len()))
	return nil
}

func (c *Catalog) registerMaterial(spec MaterialSpec) error {
	shader, err := c.Shader(spec.Shader)
	if err != nil {
		return fmt.Errorf("material %q: %w", spec.Name, err)
	}
	m := &render.Material{
		Name:   spec.Name,
		Shader: shader,
		Color:  render.RGB(spec.Color),
		Shine:  spec.Shine,
		Sort:   spec.Sort,
	}
	return c.Register(spec.Name, engine.ResMaterial, m)
}
