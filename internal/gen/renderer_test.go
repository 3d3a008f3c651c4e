package gen_test

import (
	"strings"
	"testing"

	"github.com/mickamy/sqlbase/internal/gen"
)

func TestRender(t *testing.T) {
	t.Parallel()

	src, err := gen.Render(parseOne(t, "movie.go", "Movie"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by ormgen; DO NOT EDIT.",
		"package testdata",
		`import "github.com/mickamy/sqlbase/orm"`,
		"func (Movie) TableName() string {\n\treturn \"movie\"\n}",
		`{Name: "id", Type: "INT", PrimaryKey: true, AutoIncrement: true},`,
		`{Name: "title", Type: "VARCHAR(255)", NotNull: true},`,
		`{Name: "price", Type: "DECIMAL(10,2)"},`,
		"func (m Movie) Values() []any {",
		"m.ID,\n\t\tm.Title,\n\t\tm.Price,\n\t\tm.Released,\n\t\tm.Rating,\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Posters") || strings.Contains(out, "cache") {
		t.Errorf("non-column fields rendered:\n%s", out)
	}
}

func TestRenderForeignKeys(t *testing.T) {
	t.Parallel()

	src, err := gen.Render(parseOne(t, "movie.go", "MoviePicture"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `{Name: "movie_id", Type: "INT", PrimaryKey: true, NotNull: true, ForeignKey: &orm.ForeignKey{Table: "movie", Column: "id"}},`
	if !strings.Contains(string(src), want) {
		t.Errorf("output missing %q:\n%s", want, src)
	}
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	infos, err := gen.Parse(testdataPath("movie.go"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	src, err := gen.RenderFile(infos)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if n := strings.Count(string(src), ") TableName() string"); n != 3 {
		t.Errorf("rendered %d TableName methods, want 3", n)
	}
	if n := strings.Count(string(src), "import"); n != 1 {
		t.Errorf("rendered %d imports, want 1", n)
	}
}

func TestRenderRejectsInvalidStruct(t *testing.T) {
	t.Parallel()

	if _, err := gen.Render(parseOne(t, "missing_type.go", "Review")); err == nil {
		t.Error("expected error for column without type")
	}
	if _, err := gen.Render(parseOne(t, "no_table.go", "Draft")); err == nil {
		t.Error("expected error for struct without table")
	}
	if _, err := gen.RenderFile(nil); err == nil {
		t.Error("expected error for no structs")
	}
}

func TestRenderMultiNameField(t *testing.T) {
	t.Parallel()

	src, err := gen.Render(parseOne(t, "pair.go", "Pair"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		`{Name: "a", Type: "INT", NotNull: true, ForeignKey: &orm.ForeignKey{Table: "other", Column: "id"}},`,
		`{Name: "b", Type: "INT", NotNull: true, ForeignKey: &orm.ForeignKey{Table: "other", Column: "id"}},`,
		"p.ID,\n\t\tp.A,\n\t\tp.B,\n\t\tp.Tail,\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
