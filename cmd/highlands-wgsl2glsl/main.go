package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fosdem/highlands/lib/config"
	"github.com/fosdem/highlands/lib/rendering/shaders"
)

func main() {
	kindPtr := flag.String("kind", "vertex", "Shader stage to extract: vertex or fragment")
	glPtr := flag.String("gl", "4.1", "OpenGL core version the GLSL is meant for")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <shader.wgsl>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	kind, ok := shaders.ParseKind(*kindPtr)
	if !ok {
		log.Fatalf("unknown shader kind %s", *kindPtr)
	}
	version, err := config.ParseGLVersion(*glPtr)
	if err != nil {
		log.Fatal(err)
	}

	src, err := shaders.LoadSource(flag.Arg(0), kind)
	if err != nil {
		log.Fatal(err)
	}
	out, err := shaders.TranslateWGSL(src, shaders.GLSLVersion(version.Major, version.Minor))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(out.Text)
}
