package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/paintball-slug/internal/engine"
)

func gather(t *testing.T, r *Recorder) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := r.Registry().Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		out[mf.GetName()] = mf
	}
	return out
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.SessionStarted()
	r.SessionStarted()
	r.SessionEnded()
	r.RunFinished("won")
	r.RunFinished("timeout")
	r.RunFinished("won")
	for range 5 {
		r.Frame()
	}

	mfs := gather(t, r)

	require.Contains(t, mfs, "slug_sessions_active")
	assert.Equal(t, 1.0, mfs["slug_sessions_active"].GetMetric()[0].GetGauge().GetValue())

	require.Contains(t, mfs, "slug_frames_total")
	assert.Equal(t, 5.0, mfs["slug_frames_total"].GetMetric()[0].GetCounter().GetValue())

	require.Contains(t, mfs, "slug_runs_total")
	byOutcome := map[string]float64{}
	for _, m := range mfs["slug_runs_total"].GetMetric() {
		byOutcome[labelValue(m, "outcome")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"won": 2, "timeout": 1}, byOutcome)
}

func TestSinkCountsEventsByKind(t *testing.T) {
	r := New()
	sink := r.Sink()
	sink.Emit(engine.Event{Kind: engine.EventShoot})
	sink.Emit(engine.Event{Kind: engine.EventShoot})
	sink.Emit(engine.Event{Kind: engine.EventJump})

	mfs := gather(t, r)
	require.Contains(t, mfs, "slug_events_total")
	byKind := map[string]float64{}
	for _, m := range mfs["slug_events_total"].GetMetric() {
		byKind[labelValue(m, "kind")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, byKind["shoot"])
	assert.Equal(t, 1.0, byKind["jump"])
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.SessionStarted()
		r.SessionEnded()
		r.RunFinished("won")
		r.Frame()
		r.Sink().Emit(engine.Event{Kind: engine.EventHit})
	})
}

func TestHandlerServesText(t *testing.T) {
	r := New()
	r.RunFinished("out_of_lives")

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `slug_runs_total{outcome="out_of_lives"} 1`)
}
