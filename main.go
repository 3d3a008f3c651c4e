// Command ormgen writes the TableName, Schema and Values methods for a
// db-tagged struct. Run it through go:generate:
//
//	//go:generate go run github.com/mickamy/sqlbase -type=Movie
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mickamy/sqlbase/internal/gen"
	"github.com/mickamy/sqlbase/internal/naming"
)

var version = "dev"

func main() {
	typeName := flag.String("type", "", "struct type name (required)")
	tableName := flag.String("table", "", "table name (optional; overrides the //ormgen:table directive)")
	inferTable := flag.Bool("infer-table", false, "derive a plural snake_case table name when none is declared")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("ormgen", version)
		return
	}

	if *typeName == "" {
		log.Fatal("-type flag is required")
	}

	goFile := os.Getenv("GOFILE")
	if goFile == "" {
		log.Fatal("GOFILE environment variable is not set (run via go:generate)")
	}

	infos, err := gen.Parse(goFile)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	info, err := gen.Lookup(infos, *typeName)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	switch {
	case *tableName != "":
		info.TableName = *tableName
	case info.TableName == "" && *inferTable:
		info.TableName = naming.PluralTable(*typeName)
	}

	src, err := gen.Render(info)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	outFile := strings.ToLower(*typeName) + "_gen.go"
	outPath := filepath.Join(filepath.Dir(goFile), outFile)

	if err := os.WriteFile(outPath, src, 0o644); err != nil { //nolint:gosec // generated code should be world-readable
		log.Fatalf("write %s: %v", outPath, err)
	}

	fmt.Printf("ormgen: wrote %s\n", outPath)
}
