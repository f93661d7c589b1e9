// Command beltcad exercises the geometry kernel end to end: build a
// couple of shapes, run a boolean difference through the clipper2-backed
// boolean engine, emit render primitives for the result, and, when -out
// is set, save it through the reference .belcadx codec.
// There is no scene-graph renderer here — spec.md's non-goals exclude
// scene-graph rendering and window/dock/menu plumbing, so this is a
// CLI summary, not the teacher's GLFW window loop.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/latticecad/kernel/boolean"
	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/format"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/palette"
	"github.com/latticecad/kernel/render"
	"github.com/latticecad/kernel/shape"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	log.SetFlags(logFlags)
	if os.Getenv("BELTCAD_DEBUG") == "1" {
		runtimeLogger = log.New(os.Stdout, "[beltcad] ", log.Ltime|log.Lmsgprefix)
	}
}

var (
	widthFlag  = flag.Float64("width", 40, "width in millimeters of the base rectangle")
	heightFlag = flag.Float64("height", 20, "height in millimeters of the base rectangle")
	radiusFlag = flag.Float64("radius", 8, "radius in millimeters of the circular cutout")
	outFlag    = flag.String("out", "", "if set, save the resulting document to this .belcadx path")
)

func main() {
	flag.Parse()

	s := seed()
	rng := rand.New(rand.NewSource(s))
	runtimeLogger.Printf("seed: %d", s)

	rect, err := shape.NewRect(0, 0, *widthFlag, *heightFlag)
	if err != nil {
		log.Fatalf("building rect: %v", err)
	}
	circle, err := shape.NewCircle(geom2d.New(*widthFlag/2, *heightFlag/2), *radiusFlag)
	if err != nil {
		log.Fatalf("building circle: %v", err)
	}

	rectPoly, err := rectPolygon(rect)
	if err != nil {
		log.Fatalf("decomposing rect: %v", err)
	}
	circlePoly, err := circlePolygon(circle)
	if err != nil {
		log.Fatalf("decomposing circle: %v", err)
	}

	combined, err := boolean.Combine([][]geom2d.Point2D{rectPoly}, [][]geom2d.Point2D{circlePoly}, boolean.OpDifference)
	if err != nil {
		log.Fatalf("boolean difference: %v", err)
	}

	doc := document.New()
	var added document.ObjectID
	for _, loop := range combined {
		poly, err := shape.NewPolygon(loop)
		if err != nil {
			log.Fatalf("rebuilding polygon from boolean result: %v", err)
		}
		added = doc.Add(poly, document.Style{
			Color:     palette.SequentialColor(0),
			LineWidth: 0.5,
			Visible:   true,
		})
	}

	obj, _ := doc.Get(added)
	prims, err := render.Emit(obj.Shape, render.RoleView)
	if err != nil {
		log.Fatalf("emitting render primitives: %v", err)
	}

	bounds := obj.Shape.Bounds()
	fmt.Printf("plate %.1fx%.1fmm minus %.1fmm cutout -> %d primitive(s), bounds [%.2f,%.2f]-[%.2f,%.2f]\n",
		*widthFlag, *heightFlag, *radiusFlag, len(prims),
		bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y,
	)

	decoration := palette.Shimmered(color.RGBA{R: 80, G: 140, B: 220, A: 255}, 0.2, rng)
	runtimeLogger.Printf("decoration color sample: %#v", decoration)

	if *outFlag != "" {
		container, err := format.ToContainer(doc, format.Preferences{Unit: document.UnitMillimeters, Precision: 2})
		if err != nil {
			log.Fatalf("building container: %v", err)
		}
		text, err := format.SaveText(container)
		if err != nil {
			log.Fatalf("saving document: %v", err)
		}
		if err := os.WriteFile(*outFlag, text, 0o644); err != nil {
			log.Fatalf("writing %s: %v", *outFlag, err)
		}
		runtimeLogger.Printf("wrote %s (%d bytes)", *outFlag, len(text))
	}
}

func rectPolygon(r shape.Rect) ([]geom2d.Point2D, error) {
	shapes, err := r.Decompose([]shape.Kind{shape.KindPolygon}, 0)
	if err != nil {
		return nil, err
	}
	return shapes[0].(shape.Polygon).Points, nil
}

func circlePolygon(c shape.Circle) ([]geom2d.Point2D, error) {
	shapes, err := c.Decompose([]shape.Kind{shape.KindPolygon}, 0.05)
	if err != nil {
		return nil, err
	}
	return shapes[0].(shape.Polygon).Points, nil
}

func seed() int64 {
	seedStr := os.Getenv("BELTCAD_SEED")
	if seedStr == "" {
		return time.Now().Unix()
	}
	s, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("invalid BELTCAD_SEED value %q: %v", seedStr, err)
	}
	return s
}
