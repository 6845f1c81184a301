// Package render lays out a doc.Doc within a line width.
//
// Rendering walks the document once, keeping the number of columns left on
// the current line. At every Group it first asks whether the group's
// content fits in the columns left with each Line rendered as a space
// (CanFlatten). If so the group is printed flat, otherwise its Lines become
// newlines followed by the current indentation. Each group decides on its
// own when it is reached, so breaking is locally rather than globally
// optimal.
//
// Edge policies:
//
//   - A Sep prints a space unless the line has just been broken (columns
//     left == Width - indent) or no columns are left.
//   - Text longer than the columns left starts a new line; text longer than
//     a whole line is cut into line-sized pieces.
//   - Nesting never indents past MaxIndent.
//
// Widths are byte counts. Output goes to any io.Writer; the first write
// error stops the render and is returned.
package render
