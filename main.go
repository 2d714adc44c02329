package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"gopkg.in/yaml.v2"

	"github.com/animtools/animrend/anim"
)

func readScene(scenePath string) (*Scene, error) {
	f, err := os.Open(scenePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := new(Scene)
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	scenePath := flag.String("scene", "scene.yaml", "YAML scene file.")
	flag.Parse()

	s, err := readScene(*scenePath)
	if err != nil {
		log.Fatalf("reading scene: %v", err)
	}

	opts, err := s.Options()
	if err != nil {
		log.Fatalf("building scene: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n, err := anim.Render(ctx, opts)
	if err != nil {
		log.Fatalf("render stopped after %d frames: %v", n, err)
	}
	log.Printf("wrote %d frames to %s", n, s.OutDir)
}
