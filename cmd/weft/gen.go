package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate library sources",
		Long: `Regenerate generated source files in the weft repository.

Types:
  elements    Generate the el tag constructor catalog

The output is deterministic: running a generator twice produces
identical output.

Examples:
  weft gen elements                   # print to stdout
  weft gen elements --out=el/elements.go`,
	}

	cmd.AddCommand(genElementsCmd())

	return cmd
}

// =============================================================================
// weft gen elements
// =============================================================================

func genElementsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Generate the el tag constructor catalog",
		Long: `Generate the tag constructor catalog for the el package.

Every entry in the built-in tag table becomes a constructor
function forwarding to ht.El. Without --out the source is printed
to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenElements(output)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func runGenElements(output string) error {
	src := generateElementsSource()

	if output == "" {
		fmt.Print(src)
		return nil
	}

	if err := os.WriteFile(output, []byte(src), 0644); err != nil {
		return err
	}

	n := 0
	for _, g := range elementGroups {
		n += len(g.defs)
	}
	success("Generated %s (%d constructors)", output, n)
	return nil
}

func generateElementsSource() string {
	var b strings.Builder

	b.WriteString("package el\n\n")
	b.WriteString("import \"github.com/weft-dev/weft/pkg/ht\"\n\n")
	b.WriteString("// El creates an element with an arbitrary tag name. On an invalid tag\n")
	b.WriteString("// the returned node carries the error; see ht.El.\n")
	b.WriteString("func El(tag string, args ...any) *Element { return ht.El(tag, args...) }\n\n")
	b.WriteString("// IsVoidElement returns true if the tag is a void element.\n")
	b.WriteString("func IsVoidElement(tag string) bool { return ht.IsVoidElement(tag) }\n")

	for _, g := range elementGroups {
		b.WriteString("\n")
		if g.comment != "" {
			b.WriteString("// " + g.comment + "\n\n")
		}

		// Brace alignment matches gofmt's alignment of adjacent
		// one-line functions.
		width := 0
		for _, d := range g.defs {
			if n := len(signature(d.name)); n > width {
				width = n
			}
		}
		for _, d := range g.defs {
			for _, line := range d.doc {
				b.WriteString("// " + line + "\n")
			}
			sig := signature(d.name)
			pad := strings.Repeat(" ", width-len(sig)+1)
			fmt.Fprintf(&b, "%s%s{ return ht.El(%q, args...) }\n", sig, pad, d.htmlTag())
		}
	}

	return b.String()
}

func signature(name string) string {
	return "func " + name + "(args ...any) *Element"
}

// tagDef is one entry of the built-in tag table.
type tagDef struct {
	name string   // Go constructor name
	tag  string   // HTML tag when it differs from the lowercased name
	doc  []string // doc comment lines
}

func (d tagDef) htmlTag() string {
	if d.tag != "" {
		return d.tag
	}
	return strings.ToLower(d.name)
}

type tagGroup struct {
	comment string
	defs    []tagDef
}

// elementGroups is the tag table behind the el catalog. Groups map to
// comment-separated sections of the generated file.
var elementGroups = []tagGroup{
	{comment: "Document structure elements", defs: []tagDef{
		{name: "Html"},
		{name: "Head"},
		{name: "Body"},
		{name: "Title"},
		{name: "Meta"},
		{name: "Link"},
		{name: "Base"},
	}},
	{comment: "Content sectioning elements", defs: []tagDef{
		{name: "Header"},
		{name: "Footer"},
		{name: "Main"},
		{name: "Nav"},
		{name: "Section"},
		{name: "Article"},
		{name: "Aside"},
		{name: "Address"},
		{name: "H1"},
		{name: "H2"},
		{name: "H3"},
		{name: "H4"},
		{name: "H5"},
		{name: "H6"},
		{name: "Hgroup"},
	}},
	{comment: "Text content elements", defs: []tagDef{
		{name: "Div"},
		{name: "P"},
		{name: "Span"},
		{name: "Pre"},
		{name: "Blockquote"},
		{name: "Ul"},
		{name: "Ol"},
		{name: "Li"},
		{name: "Dl"},
		{name: "Dt"},
		{name: "Dd"},
		{name: "Hr"},
		{name: "Figure"},
		{name: "Figcaption"},
	}},
	{comment: "Inline text semantics", defs: []tagDef{
		{name: "A"},
		{name: "Strong"},
		{name: "Em"},
		{name: "B"},
		{name: "I"},
		{name: "U"},
		{name: "S"},
		{name: "Small"},
		{name: "Mark"},
		{name: "Sub"},
		{name: "Sup"},
		{name: "Code"},
		{name: "Kbd"},
		{name: "Samp"},
		{name: "Var"},
		{name: "Abbr"},
		{name: "Time_", tag: "time"},
		{name: "Cite"},
		{name: "Q"},
		{name: "Dfn"},
		{name: "Ruby"},
		{name: "Rt"},
		{name: "Rp"},
		{name: "Bdi"},
		{name: "Bdo"},
	}},
	{defs: []tagDef{
		{name: "DataElement", tag: "data", doc: []string{
			"DataElement creates a <data> HTML element.",
			"For data-* attributes, use Data(key, value) from attributes.go instead.",
		}},
		{name: "Br"},
		{name: "Wbr"},
	}},
	{comment: "Form elements", defs: []tagDef{
		{name: "Form"},
		{name: "Input"},
		{name: "Textarea"},
		{name: "Select"},
		{name: "Option"},
		{name: "Optgroup"},
		{name: "Button"},
		{name: "Label"},
		{name: "Fieldset"},
		{name: "Legend"},
		{name: "Datalist"},
		{name: "Output"},
		{name: "Progress"},
		{name: "Meter"},
	}},
	{comment: "Table elements", defs: []tagDef{
		{name: "Table"},
		{name: "Thead"},
		{name: "Tbody"},
		{name: "Tfoot"},
		{name: "Tr"},
		{name: "Th"},
		{name: "Td"},
		{name: "Caption"},
		{name: "Colgroup"},
		{name: "Col"},
	}},
	{comment: "Media elements", defs: []tagDef{
		{name: "Img"},
		{name: "Picture"},
		{name: "Source"},
		{name: "Video"},
		{name: "Audio"},
		{name: "Track"},
		{name: "Iframe"},
		{name: "Embed"},
		{name: "Object"},
		{name: "Param"},
		{name: "Canvas"},
		{name: "Svg"},
		{name: "Math"},
		{name: "Map_", tag: "map"},
		{name: "Area"},
	}},
	{comment: "Interactive elements", defs: []tagDef{
		{name: "Details"},
		{name: "Summary"},
		{name: "Dialog"},
		{name: "Menu"},
	}},
	{comment: "Scripting elements", defs: []tagDef{
		{name: "Script"},
		{name: "Noscript"},
		{name: "Template"},
		{name: "Slot"},
		{name: "Style"},
	}},
}
