package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"github.com/mickamy/sqlbase/internal/naming"
)

// tableDirective marks the table a struct maps to, e.g. "//ormgen:table movie".
const tableDirective = "//ormgen:table"

// ForeignKeyInfo is the target of an fk=<table>(<column>) option.
type ForeignKeyInfo struct {
	Table  string
	Column string
}

// FieldInfo holds parsed metadata for one struct field.
type FieldInfo struct {
	Name          string          // Go field name, e.g. "ID"
	Column        string          // DB column name from `db:"id"` tag
	GoType        string          // Go type as string, e.g. "int", "string", "time.Time"
	SQLType       string          // from type=..., e.g. "VARCHAR(255)"
	PrimaryKey    bool            // true if tag contains "primaryKey"
	NotNull       bool            // true if tag contains "notNull"
	AutoIncrement bool            // true if tag contains "autoIncrement"
	ForeignKey    *ForeignKeyInfo // from fk=..., nil if absent
}

// StructInfo holds parsed metadata for the target struct.
type StructInfo struct {
	Name      string      // Go struct name, e.g. "Movie"
	Package   string      // Package name, e.g. "model"
	Fields    []FieldInfo // db-tagged fields in declaration order
	TableName string      // from the //ormgen:table directive; the caller may override it
}

// Validate reports the first declaration the generated code could not be
// built from.
func (s *StructInfo) Validate() error {
	if s.TableName == "" {
		return fmt.Errorf("%s must be annotated with a table name (%s <name>)", s.Name, tableDirective)
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("%s has no db-tagged fields", s.Name)
	}
	seen := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if f.SQLType == "" {
			return fmt.Errorf("%s.%s must declare a column type (type=...)", s.Name, f.Name)
		}
		if other, dup := seen[f.Column]; dup {
			return fmt.Errorf("%s.%s and %s.%s both map to column %q", s.Name, other, s.Name, f.Name, f.Column)
		}
		seen[f.Column] = f.Name
	}
	return nil
}

// Lookup returns the struct named typeName.
func Lookup(infos []*StructInfo, typeName string) (*StructInfo, error) {
	for _, info := range infos {
		if info.Name == typeName {
			return info, nil
		}
	}
	return nil, fmt.Errorf("struct %s not found or has no db-tagged fields", typeName)
}

// Parse reads the Go file at path and returns StructInfo for every struct
// that has at least one field with a db tag.
func Parse(filePath string) ([]*StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	pkg := file.Name.Name
	var infos []*StructInfo

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec) //nolint:forcetypeassert // type decls only hold TypeSpecs
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			fields, err := parseStructFields(st)
			if err != nil {
				return nil, fmt.Errorf("%s.%w", ts.Name.Name, err)
			}
			if len(fields) == 0 {
				continue
			}

			// A lone "type X struct" keeps its comment on the GenDecl.
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			infos = append(infos, &StructInfo{
				Name:      ts.Name.Name,
				Package:   pkg,
				Fields:    fields,
				TableName: tableName(doc),
			})
		}
	}

	return infos, nil
}

// tableName reads the directive from the raw comment lines; CommentGroup.Text
// drops directives.
func tableName(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	for _, c := range doc.List {
		if rest, ok := strings.CutPrefix(c.Text, tableDirective); ok {
			if name := strings.TrimSpace(rest); name != "" && name != rest {
				return name
			}
		}
	}
	return ""
}

// parseStructFields extracts db-tagged fields from an AST struct type.
func parseStructFields(st *ast.StructType) ([]FieldInfo, error) {
	fields := make([]FieldInfo, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		fis, err := parseField(field)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fis...)
	}
	return fields, nil
}

// parseField returns one FieldInfo per name in a db-tagged field, so
// "A, B int" yields columns a and b. Embedded and untagged fields yield none.
func parseField(field *ast.Field) ([]FieldInfo, error) {
	if len(field.Names) == 0 || field.Tag == nil {
		return nil, nil
	}
	tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	dbTag, ok := tag.Lookup("db")
	if !ok || dbTag == "-" {
		return nil, nil
	}

	parts := splitTag(dbTag)
	column := strings.TrimSpace(parts[0])
	if column != "" && len(field.Names) > 1 {
		return nil, fmt.Errorf("%s: column name %q is shared by %d fields", field.Names[0].Name, column, len(field.Names))
	}

	tmpl := FieldInfo{GoType: typeToString(field.Type)}
	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		key, value, _ := strings.Cut(opt, "=")
		switch key {
		case "primaryKey":
			tmpl.PrimaryKey = true
		case "notNull":
			tmpl.NotNull = true
		case "autoIncrement":
			tmpl.AutoIncrement = true
		case "type":
			tmpl.SQLType = strings.TrimSpace(value)
		case "fk":
			fk, err := parseForeignKey(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", field.Names[0].Name, err)
			}
			tmpl.ForeignKey = fk
		case "":
		default:
			return nil, fmt.Errorf("%s: unknown db tag option %q", field.Names[0].Name, opt)
		}
	}

	fields := make([]FieldInfo, 0, len(field.Names))
	for _, ident := range field.Names {
		if !ident.IsExported() {
			return nil, fmt.Errorf("%s: db-tagged field must be exported", ident.Name)
		}
		fi := tmpl
		fi.Name = ident.Name
		fi.Column = column
		if fi.Column == "" {
			fi.Column = naming.CamelToSnake(ident.Name)
		}
		if tmpl.ForeignKey != nil {
			fk := *tmpl.ForeignKey
			fi.ForeignKey = &fk
		}
		fields = append(fields, fi)
	}
	return fields, nil
}

// splitTag splits on commas outside parentheses, so "type=DECIMAL(10,2)"
// stays one option.
func splitTag(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// parseForeignKey parses "<table>(<column>)".
func parseForeignKey(s string) (*ForeignKeyInfo, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("fk=%q must have the form table(column)", s)
	}
	fk := &ForeignKeyInfo{
		Table:  strings.TrimSpace(s[:open]),
		Column: strings.TrimSpace(s[open+1 : len(s)-1]),
	}
	if fk.Table == "" || fk.Column == "" {
		return nil, fmt.Errorf("fk=%q must have the form table(column)", s)
	}
	return fk, nil
}

func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", typeToString(t.Len), typeToString(t.Elt))
	case *ast.BasicLit:
		return t.Value
	default:
		return fmt.Sprintf("%T", expr)
	}
}
