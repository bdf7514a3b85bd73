package peekn_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/teenjuna/peekn"
	"github.com/teenjuna/peekn/internal/testing/require"
	"github.com/teenjuna/peekn/source"
)

func TestWithPrometheus(t *testing.T) {
	registry := prometheus.NewRegistry()
	it := peekn.New3[int](
		source.Range(0, 5),
		peekn.WithPrometheus(registry, "peekn", ""),
	)

	c, ok := it.Peek3()
	require.True(t, ok)
	require.Equal(t, c.TakeAll(), []int{0, 1, 2})

	_, ok = it.Next()
	require.True(t, ok)

	_, ok = it.Peek3()
	require.False(t, ok)

	c, ok = it.Peek1()
	require.True(t, ok)
	require.Equal(t, c.TakeAll(), []int{4})

	families, err := registry.Gather()
	require.Nil(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				if l.GetName() == "result" {
					key += ":" + l.GetValue()
				}
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			}
		}
	}

	require.Equal(t, values["peekn_source_items_total"], 5.0)
	require.Equal(t, values["peekn_replayed_items_total"], 4.0)
	require.Equal(t, values["peekn_peeks_total:hit"], 2.0)
	require.Equal(t, values["peekn_peeks_total:miss"], 1.0)
	require.Equal(t, values["peekn_buffered_items"], 0.0)
}
