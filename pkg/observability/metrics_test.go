package observability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	h := m.Hooks()
	ctx := context.Background()

	h.OnTrialStart(ctx, &domain.TrialEvent{Trial: 0, Initial: "SE"})
	h.OnStep(&domain.StepEvent{Step: 1, From: "SE", To: "ER"})
	h.OnStep(&domain.StepEvent{Step: 2, From: "ER", To: "ER"})
	h.OnTrialEnd(ctx, &domain.TrialEvent{Trial: 0, Final: "ER", Steps: 3})
	h.OnRunEnd(ctx, &domain.RunEvent{})
	h.OnRunEnd(ctx, &domain.RunEvent{Err: errors.New("boom")})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Trials))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Visits.WithLabelValues("SE")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Visits.WithLabelValues("ER")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("ER", "ER")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("error")))
}

func TestNewMetrics_PanicsOnDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetrics(reg)
	assert.Panics(t, func() { observability.NewMetrics(reg) })
}
