package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"
)

// Render generates the Go source code for a single StructInfo.
// The returned bytes are formatted by gofmt.
func Render(info *StructInfo) ([]byte, error) {
	return RenderFile([]*StructInfo{info})
}

// RenderFile generates a single Go source file for all given StructInfos.
// All structs must come from the same package.
func RenderFile(infos []*StructInfo) ([]byte, error) {
	if len(infos) == 0 {
		return nil, errors.New("no structs to render")
	}

	structs := make([]templateData, 0, len(infos))
	for _, info := range infos {
		if err := info.Validate(); err != nil {
			return nil, err
		}
		if info.Package != infos[0].Package {
			return nil, fmt.Errorf("%s is in package %s, want %s", info.Name, info.Package, infos[0].Package)
		}
		structs = append(structs, templateData{
			TypeName:  info.Name,
			TableName: info.TableName,
			Receiver:  receiverName(info.Name),
			Fields:    info.Fields,
		})
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, fileTemplateData{Package: infos[0].Package, Structs: structs}); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return src, nil
}

type fileTemplateData struct {
	Package string
	Structs []templateData
}

type templateData struct {
	TypeName  string
	TableName string
	Receiver  string
	Fields    []FieldInfo
}

// receiverName returns the lowercased first letter of the type name.
func receiverName(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "v"
}

// columnLiteral renders f as an orm.Column composite literal.
func columnLiteral(f FieldInfo) string {
	var b strings.Builder
	b.WriteString("{Name: ")
	b.WriteString(strconv.Quote(f.Column))
	b.WriteString(", Type: ")
	b.WriteString(strconv.Quote(f.SQLType))
	if f.PrimaryKey {
		b.WriteString(", PrimaryKey: true")
	}
	if f.NotNull {
		b.WriteString(", NotNull: true")
	}
	if f.AutoIncrement {
		b.WriteString(", AutoIncrement: true")
	}
	if fk := f.ForeignKey; fk != nil {
		fmt.Fprintf(&b, ", ForeignKey: &orm.ForeignKey{Table: %s, Column: %s}", strconv.Quote(fk.Table), strconv.Quote(fk.Column))
	}
	b.WriteString("}")
	return b.String()
}

var funcMap = template.FuncMap{
	"quote":  strconv.Quote,
	"column": columnLiteral,
}

var fileTmpl = template.Must(template.New("gen").Funcs(funcMap).Parse(fileTemplate))

const fileTemplate = `// Code generated by ormgen; DO NOT EDIT.

package {{.Package}}

import "github.com/mickamy/sqlbase/orm"
{{range .Structs}}
// TableName returns the table {{.TypeName}} is stored in.
func ({{.TypeName}}) TableName() string {
	return {{quote .TableName}}
}

// Schema returns the columns of {{.TableName}} in declaration order.
func ({{.TypeName}}) Schema() []orm.Column {
	return []orm.Column{
		{{- range .Fields}}
		{{column .}},
		{{- end}}
	}
}

// Values returns the column values of {{.Receiver}} in Schema order.
func ({{.Receiver}} {{.TypeName}}) Values() []any {
	{{- $recv := .Receiver}}
	return []any{
		{{- range .Fields}}
		{{$recv}}.{{.Name}},
		{{- end}}
	}
}
{{end}}`
