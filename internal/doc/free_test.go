package doc

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pretty/internal/logging"
)

type countingPayload struct {
	disposed int
	inner    Doc
	err      error
}

func (p *countingPayload) Dispose() error {
	p.disposed++
	if p.inner != nil {
		if err := Free(p.inner, nil); err != nil {
			return err
		}
	}
	return p.err
}

func newExt(t *testing.T, payload any) *Extension {
	t.Helper()
	ext, err := NewExtension(ExtensionStart, payload)
	require.NoError(t, err)
	return ext
}

func TestWalkPostOrder(t *testing.T) {
	a, b := MustText("a"), MustText("b")
	root := Group(Append(a, Nest(2, b)))

	var kinds []Kind
	Walk(root, func(d Doc) { kinds = append(kinds, d.Kind()) })

	assert.Equal(t, []Kind{KindText, KindText, KindNest, KindAppend, KindGroup}, kinds)
}

func TestWalkVisitsSharedNodesOnce(t *testing.T) {
	shared := Append(MustText("x"), Line())
	root := Append(shared, shared)

	var appends int
	Walk(root, func(d Doc) {
		if d.Kind() == KindAppend {
			appends++
		}
	})
	assert.Equal(t, 2, appends)
}

func TestFreeDisposesExtensionsOnce(t *testing.T) {
	payload := &countingPayload{}
	ext := newExt(t, payload)
	root := Appends(MustText("a"), ext, Group(ext))

	require.NoError(t, Free(root, nil))
	require.NoError(t, Free(root, nil))

	assert.Equal(t, 1, payload.disposed)
	assert.True(t, ext.Released())
}

func TestFreeRecursesThroughPayload(t *testing.T) {
	innerPayload := &countingPayload{}
	inner := newExt(t, innerPayload)
	outerPayload := &countingPayload{inner: Nest(2, inner)}
	outer := newExt(t, outerPayload)

	require.NoError(t, Free(Group(outer), nil))

	assert.Equal(t, 1, outerPayload.disposed)
	assert.Equal(t, 1, innerPayload.disposed)
}

func TestFreeUsesHookForPlainPayloads(t *testing.T) {
	ext := newExt(t, "plain")
	var seen []*Extension

	require.NoError(t, Free(Append(ext, Sep()), func(e *Extension) { seen = append(seen, e) }))

	require.Len(t, seen, 1)
	assert.Same(t, ext, seen[0])
}

func TestFreeJoinsDisposeErrors(t *testing.T) {
	boom := errors.New("boom")
	root := Append(newExt(t, &countingPayload{err: boom}), newExt(t, &countingPayload{}))

	err := Free(root, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestFreeValueVariantsIsNoop(t *testing.T) {
	for _, d := range []Doc{Nil(), Sep(), Line(), nil} {
		assert.NoError(t, Free(d, nil))
	}
	shared := Line()
	root := Appends(shared, shared, shared)
	assert.NoError(t, Free(root, nil))
	assert.NoError(t, Free(root, nil))
}

func TestFreeWarnsOnLeak(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logging.SetLogger(nil) })

	require.NoError(t, Free(newExt(t, 42), nil))
	assert.Contains(t, buf.String(), "extension leaked")
	assert.Contains(t, buf.String(), "payload=int")
}

func TestMeasure(t *testing.T) {
	d := Group(Appends(MustText("one"), Line(), Nest(2, MustText("two"))))
	st := Measure(d)

	assert.Equal(t, 6, st.TextBytes)
	assert.Equal(t, 1, st.Groups)
	assert.Equal(t, 0, st.Extensions)
	assert.Equal(t, 2, st.ByKind["text"])
	assert.Equal(t, 1, st.ByKind["line"])
	assert.Equal(t, 1, st.ByKind["nil"])
	assert.Equal(t, 3, st.ByKind["append"])
	// group > append > append > append > nest > text
	assert.Equal(t, 6, st.Depth)
}
