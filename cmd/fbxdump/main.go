// Package main provides a command-line utility to dump the parsed node
// tree of a binary FBX file, for debugging readers against real assets.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/scigolib/fbx"
)

func main() {
	maxDepth := flag.Int("depth", -1, "maximum tree depth to print (-1 for unlimited)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: fbxdump [flags] <file.fbx>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	doc, err := fbx.ReadFBX(args[0])
	if err != nil {
		log.Fatalf("failed to read %s: %v", args[0], err)
	}

	v := doc.Version()
	fmt.Printf("version: %d.%d\n", v.Major, v.Minor)
	fmt.Printf("footer: % x\n", doc.Footer())

	for _, root := range doc.Roots() {
		dumpNode(root, 0, *maxDepth)
	}
}

func dumpNode(n *fbx.NodeView, depth, maxDepth int) {
	if maxDepth >= 0 && depth > maxDepth {
		return
	}

	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s (%d attrs)\n", indent, n.Name(), len(n.Attributes()))

	for _, a := range n.Attributes() {
		fmt.Printf("%s  %s\n", indent, describeAttribute(a))
	}

	for _, c := range n.AllChildren() {
		dumpNode(c, depth+1, maxDepth)
	}
}

func describeAttribute(a fbx.Attribute) string {
	if v, ok := a.AsBool(); ok {
		return fmt.Sprintf("bool: %v", v)
	}
	if v, ok := a.AsI16(); ok {
		return fmt.Sprintf("i16: %d", v)
	}
	if v, ok := a.AsI32(); ok {
		return fmt.Sprintf("i32: %d", v)
	}
	if v, ok := a.AsI64(); ok {
		return fmt.Sprintf("i64: %d", v)
	}
	if v, ok := a.AsF32(); ok {
		return fmt.Sprintf("f32: %g", v)
	}
	if v, ok := a.AsF64(); ok {
		return fmt.Sprintf("f64: %g", v)
	}
	if v, ok := a.AsBoolArray(); ok {
		return fmt.Sprintf("bool[%d]", len(v))
	}
	if v, ok := a.AsI32Array(); ok {
		return fmt.Sprintf("i32[%d]", len(v))
	}
	if v, ok := a.AsI64Array(); ok {
		return fmt.Sprintf("i64[%d]", len(v))
	}
	if v, ok := a.AsF32Array(); ok {
		return fmt.Sprintf("f32[%d]", len(v))
	}
	if v, ok := a.AsF64Array(); ok {
		return fmt.Sprintf("f64[%d]", len(v))
	}
	if v, ok := a.AsRaw(); ok {
		return fmt.Sprintf("raw[%d bytes]", len(v))
	}
	if raw, ok := a.AsBytesString(); ok {
		if s, _, err := fbx.DecodeUTF8String(a); err == nil {
			return fmt.Sprintf("string: %q", s)
		}
		return fmt.Sprintf("string: <invalid utf-8, %d bytes>", len(raw))
	}
	return "unknown"
}
