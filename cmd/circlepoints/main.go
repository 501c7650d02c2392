// Command circlepoints places points evenly on a circle and writes the
// diagram as kruznice_vykresleni.{png,svg,pdf}.
//
// Settings come from defaults, an optional config file, CIRCLEPOINTS_*
// environment variables and flags, in increasing priority:
//
//	circlepoints -radius 25 -count 8 -units cm -author Ada -table markdown
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tsawler/circlepoints"
	"github.com/tsawler/circlepoints/config"
	"github.com/tsawler/circlepoints/model"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("circlepoints: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run parses args, renders and writes the requested files. The coordinate
// table, when asked for, goes to stdout.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("circlepoints", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\nPlace points evenly on a circle and export the diagram.\n\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	def := model.DefaultSpec()
	configPath := fs.String("config", "", "config file (yaml, toml or json); default ./circlepoints.*")
	fs.Float64(config.KeyCenterX, def.Center.X, "circle center x")
	fs.Float64(config.KeyCenterY, def.Center.Y, "circle center y")
	fs.Float64(config.KeyRadius, def.Radius, "circle radius (>= 0)")
	fs.Int(config.KeyCount, def.Count, "number of points (>= 1)")
	fs.String(config.KeyColor, def.Style.Color.Hex(), "point color, #rrggbb or #rgb")
	fs.Int(config.KeySize, def.Style.Size, "point size in pt (>= 1)")
	fs.Float64(config.KeyStartAngle, def.StartAngle, "angle of point 1 in degrees")
	fs.String(config.KeyUnits, def.Units, "units label for axes and parameters")
	fs.Bool(config.KeyGrid, def.ShowGrid, "draw the dashed grid")
	fs.String(config.KeyAuthor, "", "author printed in the PDF")
	fs.String(config.KeyContact, "", "contact printed in the PDF")
	fs.String(config.KeyOut, ".", "output directory")
	fs.String(config.KeyFormats, "png,svg,pdf", "comma-separated formats to write")
	fs.Float64(config.KeyDPI, 200, "PNG resolution")
	fs.String(config.KeyTable, config.TableNone, "print the coordinate table: markdown, csv or html")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	v := config.New()
	if err := config.ReadFile(v, *configPath); err != nil {
		return err
	}
	applyFlags(v, fs)

	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	spec, err := cfg.Spec()
	if err != nil {
		return err
	}
	formats, err := cfg.OutputFormats()
	if err != nil {
		return err
	}

	out, err := circlepoints.New(spec).
		Author(cfg.Author).
		Contact(cfg.Contact).
		DPI(cfg.DPI).
		Formats(formats...).
		Export()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, f := range out.Formats() {
		path := filepath.Join(cfg.Out, f.FileName())
		if err := os.WriteFile(path, out.Bytes(f), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f, err)
		}
		log.Printf("wrote %s (%s, %d bytes)", path, f.MimeType(), len(out.Bytes(f)))
	}

	return printTable(stdout, out.Table, cfg.Table)
}

// applyFlags copies only the flags given on the command line, so unset
// flags do not mask config file or environment values.
func applyFlags(v *viper.Viper, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			return
		}
		v.Set(f.Name, f.Value.String())
	})
}

func printTable(w io.Writer, t *model.CoordinateTable, style string) error {
	var s string
	switch style {
	case config.TableNone:
		return nil
	case config.TableMarkdown:
		s = t.ToMarkdown()
	case config.TableCSV:
		s = t.ToCSV()
	case config.TableHTML:
		html, err := t.ToHTML()
		if err != nil {
			return err
		}
		s = html + "\n"
	default:
		return fmt.Errorf("unknown table style %q", style)
	}
	_, err := io.WriteString(w, s)
	return err
}
