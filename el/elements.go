package el

import "github.com/weft-dev/weft/pkg/ht"

// El creates an element with an arbitrary tag name. On an invalid tag
// the returned node carries the error; see ht.El.
func El(tag string, args ...any) *Element { return ht.El(tag, args...) }

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool { return ht.IsVoidElement(tag) }

// Document structure elements

func Html(args ...any) *Element  { return ht.El("html", args...) }
func Head(args ...any) *Element  { return ht.El("head", args...) }
func Body(args ...any) *Element  { return ht.El("body", args...) }
func Title(args ...any) *Element { return ht.El("title", args...) }
func Meta(args ...any) *Element  { return ht.El("meta", args...) }
func Link(args ...any) *Element  { return ht.El("link", args...) }
func Base(args ...any) *Element  { return ht.El("base", args...) }

// Content sectioning elements

func Header(args ...any) *Element  { return ht.El("header", args...) }
func Footer(args ...any) *Element  { return ht.El("footer", args...) }
func Main(args ...any) *Element    { return ht.El("main", args...) }
func Nav(args ...any) *Element     { return ht.El("nav", args...) }
func Section(args ...any) *Element { return ht.El("section", args...) }
func Article(args ...any) *Element { return ht.El("article", args...) }
func Aside(args ...any) *Element   { return ht.El("aside", args...) }
func Address(args ...any) *Element { return ht.El("address", args...) }
func H1(args ...any) *Element      { return ht.El("h1", args...) }
func H2(args ...any) *Element      { return ht.El("h2", args...) }
func H3(args ...any) *Element      { return ht.El("h3", args...) }
func H4(args ...any) *Element      { return ht.El("h4", args...) }
func H5(args ...any) *Element      { return ht.El("h5", args...) }
func H6(args ...any) *Element      { return ht.El("h6", args...) }
func Hgroup(args ...any) *Element  { return ht.El("hgroup", args...) }

// Text content elements

func Div(args ...any) *Element        { return ht.El("div", args...) }
func P(args ...any) *Element          { return ht.El("p", args...) }
func Span(args ...any) *Element       { return ht.El("span", args...) }
func Pre(args ...any) *Element        { return ht.El("pre", args...) }
func Blockquote(args ...any) *Element { return ht.El("blockquote", args...) }
func Ul(args ...any) *Element         { return ht.El("ul", args...) }
func Ol(args ...any) *Element         { return ht.El("ol", args...) }
func Li(args ...any) *Element         { return ht.El("li", args...) }
func Dl(args ...any) *Element         { return ht.El("dl", args...) }
func Dt(args ...any) *Element         { return ht.El("dt", args...) }
func Dd(args ...any) *Element         { return ht.El("dd", args...) }
func Hr(args ...any) *Element         { return ht.El("hr", args...) }
func Figure(args ...any) *Element     { return ht.El("figure", args...) }
func Figcaption(args ...any) *Element { return ht.El("figcaption", args...) }

// Inline text semantics

func A(args ...any) *Element      { return ht.El("a", args...) }
func Strong(args ...any) *Element { return ht.El("strong", args...) }
func Em(args ...any) *Element     { return ht.El("em", args...) }
func B(args ...any) *Element      { return ht.El("b", args...) }
func I(args ...any) *Element      { return ht.El("i", args...) }
func U(args ...any) *Element      { return ht.El("u", args...) }
func S(args ...any) *Element      { return ht.El("s", args...) }
func Small(args ...any) *Element  { return ht.El("small", args...) }
func Mark(args ...any) *Element   { return ht.El("mark", args...) }
func Sub(args ...any) *Element    { return ht.El("sub", args...) }
func Sup(args ...any) *Element    { return ht.El("sup", args...) }
func Code(args ...any) *Element   { return ht.El("code", args...) }
func Kbd(args ...any) *Element    { return ht.El("kbd", args...) }
func Samp(args ...any) *Element   { return ht.El("samp", args...) }
func Var(args ...any) *Element    { return ht.El("var", args...) }
func Abbr(args ...any) *Element   { return ht.El("abbr", args...) }
func Time_(args ...any) *Element  { return ht.El("time", args...) }
func Cite(args ...any) *Element   { return ht.El("cite", args...) }
func Q(args ...any) *Element      { return ht.El("q", args...) }
func Dfn(args ...any) *Element    { return ht.El("dfn", args...) }
func Ruby(args ...any) *Element   { return ht.El("ruby", args...) }
func Rt(args ...any) *Element     { return ht.El("rt", args...) }
func Rp(args ...any) *Element     { return ht.El("rp", args...) }
func Bdi(args ...any) *Element    { return ht.El("bdi", args...) }
func Bdo(args ...any) *Element    { return ht.El("bdo", args...) }

// DataElement creates a <data> HTML element.
// For data-* attributes, use Data(key, value) from attributes.go instead.
func DataElement(args ...any) *Element { return ht.El("data", args...) }
func Br(args ...any) *Element          { return ht.El("br", args...) }
func Wbr(args ...any) *Element         { return ht.El("wbr", args...) }

// Form elements

func Form(args ...any) *Element     { return ht.El("form", args...) }
func Input(args ...any) *Element    { return ht.El("input", args...) }
func Textarea(args ...any) *Element { return ht.El("textarea", args...) }
func Select(args ...any) *Element   { return ht.El("select", args...) }
func Option(args ...any) *Element   { return ht.El("option", args...) }
func Optgroup(args ...any) *Element { return ht.El("optgroup", args...) }
func Button(args ...any) *Element   { return ht.El("button", args...) }
func Label(args ...any) *Element    { return ht.El("label", args...) }
func Fieldset(args ...any) *Element { return ht.El("fieldset", args...) }
func Legend(args ...any) *Element   { return ht.El("legend", args...) }
func Datalist(args ...any) *Element { return ht.El("datalist", args...) }
func Output(args ...any) *Element   { return ht.El("output", args...) }
func Progress(args ...any) *Element { return ht.El("progress", args...) }
func Meter(args ...any) *Element    { return ht.El("meter", args...) }

// Table elements

func Table(args ...any) *Element    { return ht.El("table", args...) }
func Thead(args ...any) *Element    { return ht.El("thead", args...) }
func Tbody(args ...any) *Element    { return ht.El("tbody", args...) }
func Tfoot(args ...any) *Element    { return ht.El("tfoot", args...) }
func Tr(args ...any) *Element       { return ht.El("tr", args...) }
func Th(args ...any) *Element       { return ht.El("th", args...) }
func Td(args ...any) *Element       { return ht.El("td", args...) }
func Caption(args ...any) *Element  { return ht.El("caption", args...) }
func Colgroup(args ...any) *Element { return ht.El("colgroup", args...) }
func Col(args ...any) *Element      { return ht.El("col", args...) }

// Media elements

func Img(args ...any) *Element     { return ht.El("img", args...) }
func Picture(args ...any) *Element { return ht.El("picture", args...) }
func Source(args ...any) *Element  { return ht.El("source", args...) }
func Video(args ...any) *Element   { return ht.El("video", args...) }
func Audio(args ...any) *Element   { return ht.El("audio", args...) }
func Track(args ...any) *Element   { return ht.El("track", args...) }
func Iframe(args ...any) *Element  { return ht.El("iframe", args...) }
func Embed(args ...any) *Element   { return ht.El("embed", args...) }
func Object(args ...any) *Element  { return ht.El("object", args...) }
func Param(args ...any) *Element   { return ht.El("param", args...) }
func Canvas(args ...any) *Element  { return ht.El("canvas", args...) }
func Svg(args ...any) *Element     { return ht.El("svg", args...) }
func Math(args ...any) *Element    { return ht.El("math", args...) }
func Map_(args ...any) *Element    { return ht.El("map", args...) }
func Area(args ...any) *Element    { return ht.El("area", args...) }

// Interactive elements

func Details(args ...any) *Element { return ht.El("details", args...) }
func Summary(args ...any) *Element { return ht.El("summary", args...) }
func Dialog(args ...any) *Element  { return ht.El("dialog", args...) }
func Menu(args ...any) *Element    { return ht.El("menu", args...) }

// Scripting elements

func Script(args ...any) *Element   { return ht.El("script", args...) }
func Noscript(args ...any) *Element { return ht.El("noscript", args...) }
func Template(args ...any) *Element { return ht.El("template", args...) }
func Slot(args ...any) *Element     { return ht.El("slot", args...) }
func Style(args ...any) *Element    { return ht.El("style", args...) }
