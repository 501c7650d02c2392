package circlepoints_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tsawler/circlepoints"
	"github.com/tsawler/circlepoints/format"
	"github.com/tsawler/circlepoints/model"
)

func Example_coordinateTable() {
	spec := model.DefaultSpec()
	spec.Radius = 50
	spec.Count = 4

	table, err := circlepoints.New(spec).Table()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(table.ToCSV())
	// Output:
	// index,x,y
	// 1,50,0
	// 2,0,50
	// 3,-50,0
	// 4,0,-50
}

func Example_export() {
	spec := model.DefaultSpec()
	spec.Count = 8

	out, err := circlepoints.New(spec).
		Author("Ada").
		Contact("ada@example.com").
		Formats(format.SVG, format.PDF).
		Export()
	if err != nil {
		log.Fatal(err)
	}

	dir := os.TempDir()
	for _, f := range out.Formats() {
		if err := os.WriteFile(filepath.Join(dir, f.FileName()), out.Bytes(f), 0o644); err != nil {
			log.Fatal(err)
		}
	}
}
