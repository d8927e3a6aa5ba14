package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"animalsctl/internal/api"
	"animalsctl/internal/screen"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

const descriptionWidth = 50

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table, json or yaml)", s)
	}
}

// Printer writes loaded screen data in one output format.
type Printer struct {
	out    io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	return &Printer{out: out, format: format}
}

// Animals prints the animal list.
func (p *Printer) Animals(animals []api.Animal) error {
	if p.format != OutputFormatTable {
		return p.structured(animals)
	}
	if len(animals) == 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprint(screen.EmptyAnimalsText))
		return nil
	}

	t := p.newTable("ID", "NAME", "DESCRIPTION", "FACTS", "GALLERY")
	for _, a := range animals {
		t.AppendRow(table.Row{a.ID, a.Name, formatDescription(a.Description), len(a.Facts), len(a.ImageGallery)})
	}
	t.Render()
	return nil
}

// Animal prints one animal with its gallery and facts.
func (p *Printer) Animal(a api.Animal) error {
	if p.format != OutputFormatTable {
		return p.structured(a)
	}

	p.keyValueTable([][2]string{
		{"id", a.ID},
		{"name", a.Name},
		{"image", a.Image},
		{"description", a.Description},
	})
	p.section("Gallery", a.ImageGallery, screen.NoGalleryText)
	p.section("Facts", a.Facts, screen.NoFactsText)
	return nil
}

// Environments prints the environment list.
func (p *Printer) Environments(environments []api.Environment) error {
	if p.format != OutputFormatTable {
		return p.structured(environments)
	}
	if len(environments) == 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprint(screen.EmptyEnvironmentsText))
		return nil
	}

	t := p.newTable("ID", "NAME", "DESCRIPTION", "ANIMALS")
	for _, e := range environments {
		t.AppendRow(table.Row{e.ID, e.Name, formatDescription(e.Description), len(e.Animals)})
	}
	t.Render()
	return nil
}

// EnvironmentDetail prints one environment followed by its animals.
func (p *Printer) EnvironmentDetail(d screen.EnvironmentDetailData) error {
	if p.format != OutputFormatTable {
		return p.structured(d)
	}

	e := d.Environment
	p.keyValueTable([][2]string{
		{"id", e.ID},
		{"name", e.Name},
		{"image", e.Image},
		{"description", e.Description},
	})
	fmt.Fprintf(p.out, "\n%s (%d)\n", text.FgHiBlue.Sprint("Animals"), len(d.Animals))
	return p.Animals(d.Animals)
}

func (p *Printer) structured(v interface{}) error {
	switch p.format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprintln(p.out, string(data))
		return nil
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		fmt.Fprint(p.out, string(data))
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *Printer) newTable(headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = text.FgHiCyan.Sprint(h)
	}
	t.AppendHeader(row)
	return t
}

func (p *Printer) keyValueTable(pairs [][2]string) {
	t := p.newTable("PROPERTY", "VALUE")
	for _, kv := range pairs {
		value := kv[1]
		if value == "" {
			value = text.FgHiBlack.Sprint("-")
		}
		t.AppendRow(table.Row{text.FgYellow.Sprint(kv[0]), value})
	}
	t.Render()
}

func (p *Printer) section(title string, items []string, emptyText string) {
	fmt.Fprintf(p.out, "\n%s\n", text.FgHiBlue.Sprint(title))
	if len(items) == 0 {
		fmt.Fprintf(p.out, "  %s\n", text.FgHiBlack.Sprint(emptyText))
		return
	}
	for _, item := range items {
		fmt.Fprintf(p.out, "  • %s\n", item)
	}
}

// formatDescription truncates long descriptions appropriately
func formatDescription(desc string) string {
	runes := []rune(desc)
	if len(runes) <= descriptionWidth {
		return desc
	}
	return string(runes[:descriptionWidth-3]) + "..."
}
