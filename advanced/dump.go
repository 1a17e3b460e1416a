package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/rectangulate/dbg"
)

// Debug dumps. Loop surgery bugs are nearly impossible to read off raw
// pointers, so segments print as petnames with their geometry, colored by
// role: green for plain boundary, red for anything whose links are broken.

func (s *Segment) String() string {
	name := dbg.Name(s)
	if s.Next == nil || s.Prev == nil || s.Next.Prev != s || s.Prev.Next != s {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	axis := "H"
	if !s.Horizontal {
		axis = "V"
	}
	return fmt.Sprintf("%s %s(%d,%d)->(%d,%d)", name, axis,
		s.Start.Point.X, s.Start.Point.Y, s.End.Point.X, s.End.Point.Y)
}

func (v *Vertex) String() string {
	sense := "out"
	if v.Sense == Incoming {
		sense = "in"
	}
	name := dbg.Name(v)
	if v.Concave {
		name = aurora.Yellow(name).String()
	}
	return fmt.Sprintf("%s (%d,%d) %s of %s", name, v.Point.X, v.Point.Y, sense, dbg.Name(v.Segment))
}

// dumpLoop renders one full walk starting at s, flagging the spot where the
// loop fails to close.
func dumpLoop(s *Segment) string {
	var parts []string
	cur := s
	for i := 0; ; i++ {
		parts = append(parts, cur.String())
		if cur.Next == nil {
			parts = append(parts, aurora.Red("-> nil").String())
			break
		}
		cur = cur.Next
		if cur == s {
			break
		}
		if i > 1<<20 {
			parts = append(parts, aurora.Red("... never closes").String())
			break
		}
	}
	return strings.Join(parts, "\n")
}

// DebugDump scans and stitches the raster, then renders every boundary loop
// and concave corner as a colored text dump. This is the entry point behind
// the demo CLI's --debug flag; nothing in the pipeline itself depends on it.
func DebugDump(r Raster) string {
	horizontal, vertical := scanBoundary(r)
	if len(horizontal) == 0 {
		return "empty raster"
	}
	concave := stitchLoops(horizontal, vertical)

	var parts []string
	for i, loop := range collectLoops(append(horizontal, vertical...)) {
		parts = append(parts, fmt.Sprintf("loop %d:", i))
		parts = append(parts, dumpLoop(loop[0]))
	}
	parts = append(parts, fmt.Sprintf("%d concave corners:", len(concave)))
	for _, v := range concave {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "\n")
}
