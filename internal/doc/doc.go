// Package doc defines the document algebra consumed by the renderer.
//
// A Doc is an immutable tree built from a closed set of node kinds:
//
//   - Nil: renders nothing
//   - Text: a literal byte run that never contains a newline
//   - Sep: an optional space, dropped at the start of a fresh line
//   - Line: a line break, or a single space inside a flattened group
//   - Nest: raises the indentation used after breaks in its child
//   - Append: concatenation
//   - Group: the unit of the flatten-or-break decision
//
// Node kinds outside this set are carried by *Extension, whose Tag is at
// least ExtensionStart. The renderer resolves extensions into core nodes
// through a resolver held in its settings, so the algebra itself never
// interprets a payload.
//
// Nil, Sep and Line are payload-free values. They have no identity and
// nothing to release; every call to Nil() returns an interchangeable value.
//
// # Lifecycle
//
// Trees are garbage collected. Free exists for extension payloads that own
// resources (files, handles, nested trees with their own payloads): it walks
// the tree post-order and disposes every extension exactly once.
package doc
