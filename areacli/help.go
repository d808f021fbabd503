package areacli

import (
	"fmt"
	"path/filepath"
	"strings"

	"oss.terrastruct.com/shapearea/lib/shape"
	"oss.terrastruct.com/shapearea/lib/version"
	"oss.terrastruct.com/shapearea/lib/xmain"
)

// cliNames maps each shape type to the name used on the command line.
var cliNames = map[string]string{
	shape.CIRCLE_TYPE:         "circle",
	shape.TRIANGLE_TYPE:       "triangle",
	shape.RECTANGLE_TYPE:      "rectangle",
	shape.RIGHT_TRIANGLE_TYPE: "right-triangle",
}

var aliases = map[string]string{
	"rect":           shape.RECTANGLE_TYPE,
	"right_triangle": shape.RIGHT_TRIANGLE_TYPE,
	"righttriangle":  shape.RIGHT_TRIANGLE_TYPE,
}

var dimensionNames = map[string][]string{
	shape.CIRCLE_TYPE:         {"radius"},
	shape.TRIANGLE_TYPE:       {"side_a", "side_b", "side_c"},
	shape.RECTANGLE_TYPE:      {"width", "height"},
	shape.RIGHT_TRIANGLE_TYPE: {"width", "height"},
}

func lookupShape(name string) (string, bool) {
	name = strings.ToLower(name)
	for shapeType, n := range cliNames {
		if n == name {
			return shapeType, true
		}
	}
	shapeType, ok := aliases[name]
	return shapeType, ok
}

func shapesList() string {
	b := &strings.Builder{}
	for i, shapeType := range shape.Types {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "  %-16s%s", cliNames[shapeType], strings.Join(dimensionNames[shapeType], " "))
	}
	return b.String()
}

func shapesCmd(ms *xmain.State) {
	fmt.Fprintln(ms.Stdout, shapesList())
}

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--json] [--precision=-1] shape dimension...

%[1]s prints the area of the shape with the given dimensions.
Dimensions must be positive numbers. Triangle sides must satisfy the strict
triangle inequality. Pass -- before the dimensions to give a negative number.

Shapes:
%[3]s

Flags:
%[4]s

Subcommands:
  %[1]s shapes - Lists available shapes and their dimensions
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, shapesList(), ms.Opts.Defaults())
}
