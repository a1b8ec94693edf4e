package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/dragzone/dnd"
	"github.com/rileylov/dragzone/dom"
)

var _ dnd.Recorder = (*Collector)(nil)

func TestCollectorCountsProtocolTraffic(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	doc := dom.NewDocument(100, 100)
	scfg := dnd.DefaultSourceConfig()
	scfg.Recorder = c
	src := dnd.NewSource(doc, "src", scfg)
	src.Container().SetBounds(dom.Rect{Width: 10, Height: 10})
	src.SourceElement().SetBounds(dom.Rect{Width: 10, Height: 10})
	doc.Body().AppendChild(src.Container())
	src.Mount()

	tcfg := dnd.DefaultTargetConfig()
	tcfg.Recorder = c
	tg := dnd.NewTarget(doc, "bin", tcfg)
	tg.Element().SetBounds(dom.Rect{X: 40, Y: 40, Width: 10, Height: 10})
	doc.Body().AppendChild(tg.Element())
	tg.Mount()

	doc.Pointer(dom.PointerEvent{Type: dom.PointerDown, X: 2, Y: 2, Button: dom.ButtonPrimary})
	doc.Pointer(dom.PointerEvent{Type: dom.PointerMove, X: 45, Y: 45, Button: dom.ButtonPrimary})
	doc.Pointer(dom.PointerEvent{Type: dom.PointerUp, X: 45, Y: 45, Button: dom.ButtonPrimary})

	key := dnd.DefaultKey
	assert.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues(key, dnd.EventDragEnter)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues(key, dnd.EventDrop)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues(key, dnd.EventDropped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sessions.WithLabelValues(dnd.OutcomeDropped)))

	n, err := testutil.GatherAndCount(reg, "dragzone_events_total", "dragzone_sessions_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
