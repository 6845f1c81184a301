// Package markup reads documents written in a small layout language.
//
//	# comments run to the end of the line
//	group {
//	  "let" sep "x" sep "="
//	  nest 2 { line words "a long right hand side" }
//	}
//	@section "debug" { line "built at " @time "15:04:05" }
//
// A sequence of items is appended in order. Strings are Go-quoted and
// normalized to NFC before they become text.
package markup

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/text/unicode/norm"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}@]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// File is the root of a parsed document.
type File struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Items []*Item        `parser:"@@*"`
}

// Item is one element of a sequence.
type Item struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Text  *StringLiteral `parser:"  @String"`
	Words *StringLiteral `parser:"| 'words' @String"`
	Nil   bool           `parser:"| @'nil'"`
	Sep   bool           `parser:"| @'sep'"`
	Line  bool           `parser:"| @'line'"`
	Nest  *NestItem      `parser:"| @@"`
	Group *Block         `parser:"| 'group' @@"`
	Ext   *ExtItem       `parser:"| @@"`
}

// NestItem indents the breaks of its block.
type NestItem struct {
	Indent int    `parser:"'nest' @Int"`
	Body   *Block `parser:"@@"`
}

// Block is a braced sequence of items.
type Block struct {
	Items []*Item `parser:"'{' @@* '}'"`
}

// ExtItem is an extension node: @name, an optional string argument and
// an optional body.
type ExtItem struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Name string         `parser:"'@' @Ident"`
	Arg  *StringLiteral `parser:"@String?"`
	Body *Block         `parser:"@@?"`
}

// StringLiteral unquotes Go-style strings and normalizes them to NFC on
// capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(norm.NFC.String(val))
	return nil
}

// Parse parses a document from r. filename is used in error positions.
func Parse(filename string, r io.Reader) (*File, error) {
	f, err := fileParser.Parse(filename, r)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return f, nil
}

// ParseString parses a document from a string.
func ParseString(filename, input string) (*File, error) {
	f, err := fileParser.ParseString(filename, input)
	if err != nil {
		return nil, wrapParseError(err)
	}
	return f, nil
}
