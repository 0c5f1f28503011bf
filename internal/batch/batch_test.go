package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sgb-animator/internal/animation"
	"sgb-animator/internal/preview"
	"sgb-animator/internal/scene"
	"sgb-animator/internal/timeline"
)

func fixture() (*animation.Index, *scene.Table) {
	door := scene.Instance{ID: 7, Name: "door", Transform: scene.IdentityTransform()}
	crate := scene.Instance{ID: 8, Name: "crate", Transform: scene.IdentityTransform()}
	crate.Transform.Translation = mgl32.Vec3{2, 0, 0}
	sections := []scene.Section{{Instances: []scene.Instance{door, crate}}}

	graph := timeline.Graph{Sections: []timeline.Section{{Timelines: []timeline.Timeline{{
		Associations: []timeline.Association{{InstanceID: 7, AnchorKey: 1}},
		Nodes: []timeline.Node{
			&timeline.Anchor{ID: 1, Key: 1, TransformRefIDs: []uint16{2}},
			&timeline.TransformRef{ID: 2, AnimationIDs: []uint16{3}},
			&timeline.ModelAnimation{ID: 3, Duration: 10, CurveSetID: 4},
			&timeline.CurveSet{ID: 4, Curves: []timeline.Curve{{
				Attribute: timeline.RotationZ,
				Rows:      []timeline.Row{{Time: 0, Value: 0}, {Time: 10, Value: 90}},
			}}},
		},
	}}}}}
	return animation.Build(graph, sections), scene.NewTable(sections)
}

func runFixture(t *testing.T, out string, frames int) ([]Result, *animation.Index, *scene.Table) {
	t.Helper()
	ix, tbl := fixture()
	results := Run(Config{
		OutputDir: out,
		Renderer:  preview.NewRenderer(ix, tbl, preview.Options{Size: 32, Supersample: 2}),
		Frames:    frames,
		FrameTime: func(i int) float32 { return float32(i) * 2.5 },
		Workers:   2,
	})
	return results, ix, tbl
}

func TestRunWritesFrames(t *testing.T) {
	out := t.TempDir()
	results, _, _ := runFixture(t, out, 4)

	require.Len(t, results, 4)
	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, i, r.Frame)
		assert.Equal(t, float32(i)*2.5, r.Time)

		data, err := os.ReadFile(filepath.Join(out, r.Image))
		require.NoError(t, err)
		require.Greater(t, len(data), 12)
		assert.Equal(t, "RIFF", string(data[:4]))
		assert.Equal(t, "WEBP", string(data[8:12]))
	}
	assert.Equal(t, filepath.Join("frames", "0003.webp"), results[3].Image)
}

func TestRunReportsFailures(t *testing.T) {
	// A regular file where the output directory should be.
	out := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(out, nil, 0644))

	results, _, _ := runFixture(t, out, 2)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
}

func TestWriteManifest(t *testing.T) {
	out := t.TempDir()
	results, ix, tbl := runFixture(t, out, 3)

	path := filepath.Join(out, "manifest.json")
	require.NoError(t, WriteManifest(path, results, ix, tbl))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))

	require.Len(t, entries, 3)
	assert.Equal(t, "frames/0001.webp", entries[1].Image)
	assert.Equal(t, float32(2.5), entries[1].Time)

	require.Len(t, entries[1].Instances, 2)
	door, crate := entries[1].Instances[0], entries[1].Instances[1]

	assert.Equal(t, uint32(7), door.ID)
	assert.True(t, door.Animated)
	want := mgl32.HomogRotate3DZ(mgl32.DegToRad(22.5))
	assert.InDeltaSlice(t, want[:], door.Matrix[:], 1e-5)

	assert.Equal(t, "crate", crate.Name)
	assert.False(t, crate.Animated)
	want = mgl32.Translate3D(2, 0, 0)
	assert.InDeltaSlice(t, want[:], crate.Matrix[:], 1e-6)
}

type closeFailWriter struct {
	bytes.Buffer
	closed bool
}

var errDiskFull = errors.New("disk full")

func (w *closeFailWriter) Close() error {
	w.closed = true
	return errDiskFull
}

func TestWriteFrameReportsCloseError(t *testing.T) {
	w := &closeFailWriter{}
	err := writeFrame(w, image.NewNRGBA(image.Rect(0, 0, 4, 4)))

	require.ErrorIs(t, err, errDiskFull)
	assert.True(t, w.closed)
	assert.Positive(t, w.Len())
}
