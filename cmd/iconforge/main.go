// iconforge — Placeholder icon generation for browser extensions.
//
// Usage:
//
//	iconforge [-o <dir>] [--sizes 16,32,48,128] [--color <hex>] [options]
//	iconforge pixel [-o <dir>] [--upscale]
//	iconforge ico -o <file> [options]
//	iconforge set --spec <path>
//	iconforge schema --spec <path>
//	iconforge serve [--port 8080]
//	iconforge init
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xob0t/iconforge/clients/server"
	"github.com/xob0t/iconforge/pkg/icon"
	"github.com/xob0t/iconforge/pkg/iconset"
	"github.com/xob0t/iconforge/pkg/manifest"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		// Bare invocation generates the default set, like the script this
		// tool replaces.
		if err := run(nil); err != nil {
			fatal(err)
		}
		return
	}

	switch args[0] {
	case "pixel":
		if err := runPixel(args[1:]); err != nil {
			fatal(err)
		}
	case "ico":
		if err := runICO(args[1:]); err != nil {
			fatal(err)
		}
	case "set":
		if err := runSet(args[1:]); err != nil {
			fatal(err)
		}
	case "schema":
		if err := runSchema(args[1:]); err != nil {
			fatal(err)
		}
	case "init":
		if err := runInit(args[1:]); err != nil {
			fatal(err)
		}
	case "serve":
		if err := server.RunServe(args[1:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		if err := run(args); err != nil {
			fatal(err)
		}
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("iconforge", flag.ExitOnError)

	var (
		dir          string
		sizesFlag    string
		colorFlag    string
		encoderFlag  string
		styleFlag    string
		label        string
		manifestPath string
		icoPath      string
	)

	fs.StringVar(&dir, "o", "assets/icons", "Output directory")
	fs.StringVar(&dir, "out", "assets/icons", "Output directory")
	fs.StringVar(&sizesFlag, "sizes", "", "Comma-separated sizes (default: 16,32,48,128)")
	fs.StringVar(&colorFlag, "color", icon.DefaultColor, "Fill color: hex or 'random'")
	fs.StringVar(&encoderFlag, "encoder", "raw", "Encoder: raw or render")
	fs.StringVar(&styleFlag, "style", "solid", "Badge style: solid, circle or rounded (render only)")
	fs.StringVar(&label, "label", "", "1-2 letter overlay (render only)")
	fs.StringVar(&manifestPath, "manifest", "", "manifest.json to patch after generating")
	fs.StringVar(&icoPath, "ico", "", "Also bundle the set into one .ico file")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := icon.ParseSizes(sizesFlag)
	if err != nil {
		return err
	}
	encoder, err := icon.ParseEncoder(encoderFlag)
	if err != nil {
		return err
	}
	if encoder == icon.EncoderPixel {
		return fmt.Errorf("use the pixel subcommand for the fixed-pixel placeholder")
	}
	style, err := icon.ParseStyle(styleFlag)
	if err != nil {
		return err
	}
	// Pin "random" once so the whole set shares one color.
	fill, err := icon.ResolveColor(colorFlag)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, size := range sizes {
		path := filepath.Join(dir, icon.Filename(size))
		cfg := icon.Config{
			Size:    size,
			Color:   fill,
			Style:   style,
			Label:   label,
			Encoder: encoder,
		}
		if err := icon.Generate(path, cfg); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
	}

	if icoPath != "" {
		cfg := icon.Config{Color: fill, Style: style, Label: label, Encoder: encoder}
		if err := icon.WriteICO(icoPath, sizes, cfg); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", icoPath)
	}

	if manifestPath != "" {
		if err := manifest.Patch(manifestPath, dir, sizes); err != nil {
			return err
		}
		fmt.Printf("Patched %s\n", manifestPath)
	}

	fmt.Println("All icon files created successfully!")
	return nil
}

func runPixel(args []string) error {
	fs := flag.NewFlagSet("pixel", flag.ExitOnError)

	var (
		dir       string
		sizesFlag string
		upscale   bool
	)

	fs.StringVar(&dir, "o", "assets/icons", "Output directory")
	fs.StringVar(&dir, "out", "assets/icons", "Output directory")
	fs.StringVar(&sizesFlag, "sizes", "", "Comma-separated sizes (default: 16,32,48,128)")
	fs.BoolVar(&upscale, "upscale", false, "Write size-correct solid fills instead of the 1x1 pixel")

	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := icon.ParseSizes(sizesFlag)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, size := range sizes {
		name := icon.Filename(size)
		path := filepath.Join(dir, name)
		if upscale {
			cfg := icon.Config{Size: size, Color: icon.DefaultColor, Encoder: icon.EncoderRaw}
			if err := icon.Generate(path, cfg); err != nil {
				return err
			}
		} else {
			if err := icon.WritePixel(path); err != nil {
				return err
			}
		}
		fmt.Printf("Created %s\n", name)
	}

	if upscale {
		fmt.Println("All icon files created successfully!")
	} else {
		fmt.Println("Icon files created. These are placeholder 1x1 blue pixels.")
		fmt.Println("For production, replace with proper icon files.")
	}
	return nil
}

func runICO(args []string) error {
	fs := flag.NewFlagSet("ico", flag.ExitOnError)

	var (
		output      string
		sizesFlag   string
		colorFlag   string
		encoderFlag string
		styleFlag   string
		label       string
	)

	fs.StringVar(&output, "o", "icon.ico", "Output .ico file")
	fs.StringVar(&output, "out", "icon.ico", "Output .ico file")
	fs.StringVar(&sizesFlag, "sizes", "", "Comma-separated sizes (default: 16,32,48,128)")
	fs.StringVar(&colorFlag, "color", icon.DefaultColor, "Fill color: hex or 'random'")
	fs.StringVar(&encoderFlag, "encoder", "raw", "Encoder: raw or render")
	fs.StringVar(&styleFlag, "style", "solid", "Badge style (render only)")
	fs.StringVar(&label, "label", "", "1-2 letter overlay (render only)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := icon.ParseSizes(sizesFlag)
	if err != nil {
		return err
	}
	encoder, err := icon.ParseEncoder(encoderFlag)
	if err != nil {
		return err
	}
	style, err := icon.ParseStyle(styleFlag)
	if err != nil {
		return err
	}
	fill, err := icon.ResolveColor(colorFlag)
	if err != nil {
		return err
	}

	cfg := icon.Config{Color: fill, Style: style, Label: label, Encoder: encoder}
	if err := icon.WriteICO(output, sizes, cfg); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", output)
	return nil
}

func runSet(args []string) error {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	var specPath string
	fs.StringVar(&specPath, "spec", "iconset.yml", "Path to icon set spec")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, warnings, err := iconset.Load(specPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Pin "random" once across the whole set.
	spec.Color, err = icon.ResolveColor(spec.Color)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(spec.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	resolved := iconset.Resolve(spec)
	sizes := make([]int, 0, len(resolved))
	for _, r := range resolved {
		path := filepath.Join(spec.Dir, icon.Filename(r.Size))
		if r.Config.Encoder == icon.EncoderPixel {
			if err := icon.WritePixel(path); err != nil {
				return err
			}
		} else if err := icon.Generate(path, r.Config); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		sizes = append(sizes, r.Size)
	}

	if spec.ICO != "" {
		cfg := icon.Config{Color: spec.Color, Label: spec.Label}
		if enc, err := icon.ParseEncoder(spec.Encoder); err == nil {
			cfg.Encoder = enc
		}
		if style, err := icon.ParseStyle(spec.Style); err == nil {
			cfg.Style = style
		}
		if err := icon.WriteICO(spec.ICO, sizes, cfg); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", spec.ICO)
	}

	if spec.Manifest != "" {
		if err := manifest.Patch(spec.Manifest, spec.Dir, sizes); err != nil {
			return err
		}
		fmt.Printf("Patched %s\n", spec.Manifest)
	}

	fmt.Println("All icon files created successfully!")
	return nil
}

func runSchema(args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var specPath string
	fs.StringVar(&specPath, "spec", "", "Path to icon set spec")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if specPath == "" {
		return fmt.Errorf("--spec is required for schema command")
	}

	spec, warnings, err := iconset.Load(specPath)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	fmt.Print(iconset.FormatSchema(spec))
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var specOut string
	fs.StringVar(&specOut, "spec", "iconset.yml", "Output path for sample spec")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(specOut, []byte(iconset.ExampleYAML()), 0644); err != nil {
		return fmt.Errorf("write spec: %w", err)
	}

	fmt.Printf("Created: %s\n", specOut)
	fmt.Println("Run: iconforge set --spec " + specOut)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`iconforge — Placeholder icons for browser extensions (Pure Go)

USAGE:
    iconforge [options]                 Generate the icon set
    iconforge pixel [options]           Write the fixed 1x1 placeholder
    iconforge ico -o <file> [options]   Bundle the set into one ICO
    iconforge set --spec <path>         Generate from an iconset.yml spec
    iconforge schema --spec <path>      Describe a spec file
    iconforge serve [--port 8080]       Start the preview server
    iconforge init                      Write a sample iconset.yml

GENERATE:
    -o, --out <dir>        Output directory (default: assets/icons)
    --sizes <list>         Comma-separated sizes (default: 16,32,48,128)
    --color <hex>          Fill color or 'random' (default: #0077b5)
    --encoder <name>       raw (hand-assembled chunks) or render (default: raw)
    --style <name>         solid, circle or rounded — render encoder only
    --label <XX>           1-2 letter overlay — render encoder only
    --manifest <path>      Patch the icons stanza of a manifest.json
    --ico <path>           Also bundle the set into one .ico file

PIXEL:
    -o, --out <dir>        Output directory (default: assets/icons)
    --sizes <list>         Comma-separated sizes (default: 16,32,48,128)
    --upscale              Size-correct solid fills instead of the 1x1 pixel

EXAMPLES:
    iconforge
    iconforge --color "#d93025" --encoder render --style circle --label LA
    iconforge pixel
    iconforge ico -o assets/icon.ico --encoder render --style rounded
    iconforge init
    iconforge set --spec iconset.yml
    iconforge serve
`)
}
