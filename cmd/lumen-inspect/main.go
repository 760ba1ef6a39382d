package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/lumen"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	scenePath := flag.String("scene", "", "YAML scene file (overrides the config)")
	designer := flag.Bool("designer", false, "Run in designer mode (debug glyphs)")
	ticks := flag.Int("ticks", -1, "Number of updates to run (overrides the config)")
	schemaOut := flag.String("schema", "", "Write the directional light editor schema to this file")
	flag.Parse()

	if err := run(*configPath, *scenePath, *designer, *ticks, *schemaOut); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, scenePath string, designer bool, ticks int, schemaOut string) error {
	cfg := lumen.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = lumen.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if designer {
		cfg.Designer = true
	}
	if scenePath != "" {
		cfg.Scene = scenePath
	}
	if ticks >= 0 {
		cfg.Ticks = ticks
	}

	app := lumen.NewAppBuilder().
		UseConfig(cfg).
		UseModule(
			lumen.TimeModule{Step: cfg.Step},
			lumen.HierarchyModule{},
			lumen.DirectionalLightModule{},
			lumen.LifecycleModule{},
		).
		Build()
	cmd := app.Commands()

	if cfg.Scene != "" {
		if _, err := lumen.LoadSceneFile(cmd, cfg.Scene); err != nil {
			return err
		}
	}

	app.Run(cfg.Ticks)

	clock, _ := lumen.Resource[lumen.Time](app)
	fmt.Printf("frames=%d entities=%d\n", clock.Frame, len(cmd.Entities()))

	buffer, _ := lumen.Resource[lumen.LightBuffer](app)
	for i, l := range buffer.Lights {
		fmt.Printf("light %d: dir=(%.3f, %.3f, %.3f) color=(%.3f, %.3f, %.3f) intensity=%.2f shadows=%v\n",
			i,
			l.Direction[0], l.Direction[1], l.Direction[2],
			l.Color[0], l.Color[1], l.Color[2], l.Color[3],
			l.Params[3] != 0,
		)
	}
	fmt.Printf("models=%d mesh_instances=%d\n", len(app.Context().Scene.Models()), len(app.Context().Scene.MeshInstances()))

	if schemaOut != "" {
		lights, _ := lumen.Resource[lumen.DirectionalLightSystem](app)
		doc, err := lumen.ExportSchema(lights.ID(), lights.Schema())
		if err != nil {
			return err
		}
		if err := os.WriteFile(schemaOut, doc, 0644); err != nil {
			return err
		}
	}
	return nil
}
