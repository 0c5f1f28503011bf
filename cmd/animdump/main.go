package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"sgb-animator/internal/animation"
	"sgb-animator/internal/curve"
	"sgb-animator/internal/mathutil"
	"sgb-animator/internal/scene"
	"sgb-animator/internal/scenefile"
	"sgb-animator/internal/timeline"
)

func main() {
	scenePath := flag.String("scene", "", "Path to scene description (.yaml or .json)")
	at := flag.String("at", "0", "Comma-separated timeline times to sample")
	instance := flag.Int64("instance", -1, "Dump only this instance id")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: animdump -scene <file> [-at 0,2.5,5] [-instance id]")
		os.Exit(1)
	}

	times, err := parseTimes(*at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -at: %v\n", err)
		os.Exit(1)
	}
	if _, err := selectIDs(nil, *instance); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	asset, err := scenefile.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table := asset.Table()
	index := animation.Build(asset.Graph, asset.Scene.Sections)

	fmt.Printf("Scene: %s\n", *scenePath)
	fmt.Printf("Sections: %d, instances: %d, animated: %d\n", len(asset.Scene.Sections), table.Len(), index.Len())

	fmt.Printf("Animated ids: %v\n", index.InstanceIDs())
	for si, sec := range asset.Graph.Sections {
		for ti := range sec.Timelines {
			fmt.Printf("  section %d timeline %d: %s\n", si, ti, summarizeTimeline(&sec.Timelines[ti]))
		}
	}

	ids, _ := selectIDs(table.IDs(), *instance)

	for _, id := range ids {
		inst, ok := table.Lookup(id)
		if !ok {
			fmt.Printf("\nInstance %d: not found\n", id)
			continue
		}
		dumpInstance(index, table, inst, times)
	}
}

func dumpInstance(ix *animation.Index, table *scene.Table, inst scene.Instance, times []float32) {
	bindings, _ := ix.Lookup(inst.ID)
	fmt.Printf("\nInstance %d %q (%s): %d binding(s)\n", inst.ID, inst.Name, inst.AssetPath, len(bindings))

	for _, b := range bindings {
		if b.Curves == nil {
			fmt.Printf("  animation %d duration %d curve set %d: unresolved\n",
				b.Animation.ID, b.Animation.Duration, b.Animation.CurveSetID)
			continue
		}
		fmt.Printf("  animation %d duration %d curve set %d:\n",
			b.Animation.ID, b.Animation.Duration, b.Animation.CurveSetID)
		for _, c := range b.Curves.Curves {
			fmt.Printf("    %-10s %d key(s)", c.Attribute, len(c.Rows))
			for _, t := range times {
				if v, ok := curve.Sample(c, t, float32(b.Animation.Duration)); ok {
					fmt.Printf("  t=%g:%g", t, v)
				}
			}
			fmt.Println()
		}
	}

	for _, t := range times {
		m, _ := ix.AnimateMatrix(table, inst.ID, t)
		fmt.Printf("  t=%g\n%s", t, formatMatrix(m))
	}
}

// selectIDs narrows all to the -instance flag value; -1 keeps every id.
func selectIDs(all []uint32, instance int64) ([]uint32, error) {
	switch {
	case instance == -1:
		return all, nil
	case instance < -1 || instance > math.MaxUint32:
		return nil, fmt.Errorf("-instance %d out of range", instance)
	}
	return []uint32{uint32(instance)}, nil
}

// summarizeTimeline counts nodes per kind in first-seen order.
func summarizeTimeline(tl *timeline.Timeline) string {
	var kinds []timeline.Kind
	counts := make(map[timeline.Kind]int)
	for _, n := range tl.Nodes {
		k := n.Kind()
		if counts[k] == 0 {
			kinds = append(kinds, k)
		}
		counts[k]++
	}
	parts := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s x%d", k, counts[k]))
	}
	parts = append(parts, fmt.Sprintf("%d association(s)", len(tl.Associations)))
	return strings.Join(parts, ", ")
}

func formatMatrix(m mgl32.Mat4) string {
	if mathutil.IsIdentity(m) {
		return "    identity\n"
	}
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		fmt.Fprintf(&sb, "    [%9.4f %9.4f %9.4f %9.4f]\n", row[0], row[1], row[2], row[3])
	}
	return sb.String()
}

func parseTimes(s string) ([]float32, error) {
	var out []float32
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, float32(v))
	}
	return out, nil
}
