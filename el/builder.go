package el

import "github.com/weft-dev/weft/pkg/ht"

// Builder provides the element catalog as methods, for callbacks that
// receive a builder instead of dot-importing this package. All methods
// forward to the package-level constructors.
//
//	weft.Render(func(b el.Builder) any {
//	    return b.Div(b.H1("Hello"), b.P("World"))
//	})
type Builder struct{}

// El creates an element with an arbitrary tag name.
func (Builder) El(tag string, args ...any) *Element { return ht.El(tag, args...) }

// Text creates a text node.
func (Builder) Text(content string) *Element { return ht.Text(content) }

// Textf creates a formatted text node.
func (Builder) Textf(format string, args ...any) *Element { return ht.Textf(format, args...) }

// Raw marks html as pre-rendered markup that bypasses escaping.
func (Builder) Raw(html string) Raw { return Raw(html) }

// Group groups children without a wrapper element.
func (Builder) Group(args ...any) *Element { return ht.Group(args...) }

// Document structure

func (Builder) Html(args ...any) *Element  { return Html(args...) }
func (Builder) Head(args ...any) *Element  { return Head(args...) }
func (Builder) Body(args ...any) *Element  { return Body(args...) }
func (Builder) Title(args ...any) *Element { return Title(args...) }
func (Builder) Meta(args ...any) *Element  { return Meta(args...) }
func (Builder) Link(args ...any) *Element  { return Link(args...) }
func (Builder) Base(args ...any) *Element  { return Base(args...) }

// Content sectioning

func (Builder) Header(args ...any) *Element  { return Header(args...) }
func (Builder) Footer(args ...any) *Element  { return Footer(args...) }
func (Builder) Main(args ...any) *Element    { return Main(args...) }
func (Builder) Nav(args ...any) *Element     { return Nav(args...) }
func (Builder) Section(args ...any) *Element { return Section(args...) }
func (Builder) Article(args ...any) *Element { return Article(args...) }
func (Builder) Aside(args ...any) *Element   { return Aside(args...) }
func (Builder) Address(args ...any) *Element { return Address(args...) }
func (Builder) H1(args ...any) *Element      { return H1(args...) }
func (Builder) H2(args ...any) *Element      { return H2(args...) }
func (Builder) H3(args ...any) *Element      { return H3(args...) }
func (Builder) H4(args ...any) *Element      { return H4(args...) }
func (Builder) H5(args ...any) *Element      { return H5(args...) }
func (Builder) H6(args ...any) *Element      { return H6(args...) }
func (Builder) Hgroup(args ...any) *Element  { return Hgroup(args...) }

// Text content

func (Builder) Div(args ...any) *Element        { return Div(args...) }
func (Builder) P(args ...any) *Element          { return P(args...) }
func (Builder) Span(args ...any) *Element       { return Span(args...) }
func (Builder) Pre(args ...any) *Element        { return Pre(args...) }
func (Builder) Blockquote(args ...any) *Element { return Blockquote(args...) }
func (Builder) Ul(args ...any) *Element         { return Ul(args...) }
func (Builder) Ol(args ...any) *Element         { return Ol(args...) }
func (Builder) Li(args ...any) *Element         { return Li(args...) }
func (Builder) Dl(args ...any) *Element         { return Dl(args...) }
func (Builder) Dt(args ...any) *Element         { return Dt(args...) }
func (Builder) Dd(args ...any) *Element         { return Dd(args...) }
func (Builder) Hr(args ...any) *Element         { return Hr(args...) }
func (Builder) Figure(args ...any) *Element     { return Figure(args...) }
func (Builder) Figcaption(args ...any) *Element { return Figcaption(args...) }

// Inline text semantics

func (Builder) A(args ...any) *Element           { return A(args...) }
func (Builder) Strong(args ...any) *Element      { return Strong(args...) }
func (Builder) Em(args ...any) *Element          { return Em(args...) }
func (Builder) B(args ...any) *Element           { return B(args...) }
func (Builder) I(args ...any) *Element           { return I(args...) }
func (Builder) U(args ...any) *Element           { return U(args...) }
func (Builder) S(args ...any) *Element           { return S(args...) }
func (Builder) Small(args ...any) *Element       { return Small(args...) }
func (Builder) Mark(args ...any) *Element        { return Mark(args...) }
func (Builder) Sub(args ...any) *Element         { return Sub(args...) }
func (Builder) Sup(args ...any) *Element         { return Sup(args...) }
func (Builder) Code(args ...any) *Element        { return Code(args...) }
func (Builder) Kbd(args ...any) *Element         { return Kbd(args...) }
func (Builder) Samp(args ...any) *Element        { return Samp(args...) }
func (Builder) Var(args ...any) *Element         { return Var(args...) }
func (Builder) Abbr(args ...any) *Element        { return Abbr(args...) }
func (Builder) Time_(args ...any) *Element       { return Time_(args...) }
func (Builder) Cite(args ...any) *Element        { return Cite(args...) }
func (Builder) Q(args ...any) *Element           { return Q(args...) }
func (Builder) Dfn(args ...any) *Element         { return Dfn(args...) }
func (Builder) Ruby(args ...any) *Element        { return Ruby(args...) }
func (Builder) Rt(args ...any) *Element          { return Rt(args...) }
func (Builder) Rp(args ...any) *Element          { return Rp(args...) }
func (Builder) Bdi(args ...any) *Element         { return Bdi(args...) }
func (Builder) Bdo(args ...any) *Element         { return Bdo(args...) }
func (Builder) DataElement(args ...any) *Element { return DataElement(args...) }
func (Builder) Br(args ...any) *Element          { return Br(args...) }
func (Builder) Wbr(args ...any) *Element         { return Wbr(args...) }

// Forms

func (Builder) Form(args ...any) *Element     { return Form(args...) }
func (Builder) Input(args ...any) *Element    { return Input(args...) }
func (Builder) Textarea(args ...any) *Element { return Textarea(args...) }
func (Builder) Select(args ...any) *Element   { return Select(args...) }
func (Builder) Option(args ...any) *Element   { return Option(args...) }
func (Builder) Optgroup(args ...any) *Element { return Optgroup(args...) }
func (Builder) Button(args ...any) *Element   { return Button(args...) }
func (Builder) Label(args ...any) *Element    { return Label(args...) }
func (Builder) Fieldset(args ...any) *Element { return Fieldset(args...) }
func (Builder) Legend(args ...any) *Element   { return Legend(args...) }
func (Builder) Datalist(args ...any) *Element { return Datalist(args...) }
func (Builder) Output(args ...any) *Element   { return Output(args...) }
func (Builder) Progress(args ...any) *Element { return Progress(args...) }
func (Builder) Meter(args ...any) *Element    { return Meter(args...) }

// Tables

func (Builder) Table(args ...any) *Element    { return Table(args...) }
func (Builder) Thead(args ...any) *Element    { return Thead(args...) }
func (Builder) Tbody(args ...any) *Element    { return Tbody(args...) }
func (Builder) Tfoot(args ...any) *Element    { return Tfoot(args...) }
func (Builder) Tr(args ...any) *Element       { return Tr(args...) }
func (Builder) Th(args ...any) *Element       { return Th(args...) }
func (Builder) Td(args ...any) *Element       { return Td(args...) }
func (Builder) Caption(args ...any) *Element  { return Caption(args...) }
func (Builder) Colgroup(args ...any) *Element { return Colgroup(args...) }
func (Builder) Col(args ...any) *Element      { return Col(args...) }

// Media and embedded content

func (Builder) Img(args ...any) *Element     { return Img(args...) }
func (Builder) Picture(args ...any) *Element { return Picture(args...) }
func (Builder) Source(args ...any) *Element  { return Source(args...) }
func (Builder) Video(args ...any) *Element   { return Video(args...) }
func (Builder) Audio(args ...any) *Element   { return Audio(args...) }
func (Builder) Track(args ...any) *Element   { return Track(args...) }
func (Builder) Iframe(args ...any) *Element  { return Iframe(args...) }
func (Builder) Embed(args ...any) *Element   { return Embed(args...) }
func (Builder) Object(args ...any) *Element  { return Object(args...) }
func (Builder) Param(args ...any) *Element   { return Param(args...) }
func (Builder) Canvas(args ...any) *Element  { return Canvas(args...) }
func (Builder) Svg(args ...any) *Element     { return Svg(args...) }
func (Builder) Math(args ...any) *Element    { return Math(args...) }
func (Builder) Map_(args ...any) *Element    { return Map_(args...) }
func (Builder) Area(args ...any) *Element    { return Area(args...) }

// Interactive elements

func (Builder) Details(args ...any) *Element { return Details(args...) }
func (Builder) Summary(args ...any) *Element { return Summary(args...) }
func (Builder) Dialog(args ...any) *Element  { return Dialog(args...) }
func (Builder) Menu(args ...any) *Element    { return Menu(args...) }

// Scripting

func (Builder) Script(args ...any) *Element   { return Script(args...) }
func (Builder) Noscript(args ...any) *Element { return Noscript(args...) }
func (Builder) Template(args ...any) *Element { return Template(args...) }
func (Builder) Slot(args ...any) *Element     { return Slot(args...) }
func (Builder) Style(args ...any) *Element    { return Style(args...) }
