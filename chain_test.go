package chain_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/chain"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sgr = model.Config{
	States: []string{"SE", "ER", "AP", "DE", "SG"},
	Matrix: [][]float64{
		{0.2, 0.8, 0.0, 0.0, 0.0},
		{0.3, 0.1, 0.6, 0.0, 0.0},
		{0.0, 0.0, 0.1, 0.9, 0.0},
		{0.0, 0.0, 0.0, 0.3, 0.7},
		{0.0, 0.0, 0.0, 0.0, 1.0},
	},
}

func TestNew_RejectsInvalidModel(t *testing.T) {
	_, err := chain.New(model.Config{
		States: []string{"A", "B"},
		Matrix: [][]float64{{0.5, 0.4}, {0, 1}},
	})
	assert.ErrorIs(t, err, domain.ErrRowSum)
}

func TestEngine_Run(t *testing.T) {
	reg := prometheus.NewRegistry()
	eng, err := chain.New(sgr, chain.WithSeed(42), chain.WithMetrics(reg))
	require.NoError(t, err)

	res, err := eng.Run(context.Background(), "SE", 20, 4)
	require.NoError(t, err)

	assert.Len(t, res.Trials, 4)
	assert.Equal(t, 80, res.Total)
	assert.Equal(t, int64(42), eng.Seed())

	m := eng.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Trials))
	assert.Equal(t, 76.0, testutil.ToFloat64(m.Steps))
	assert.Equal(t, float64(res.Counts["SE"]), testutil.ToFloat64(m.Visits.WithLabelValues("SE")))
}

func TestEngine_RunErrors(t *testing.T) {
	eng, err := chain.New(sgr, chain.WithSeed(1))
	require.NoError(t, err)

	_, err = eng.Run(context.Background(), "ZZ", 5, 1)
	assert.ErrorIs(t, err, domain.ErrUnknownState)

	_, err = eng.Run(context.Background(), "SE", 5, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestEngine_SeedReproducible(t *testing.T) {
	a, err := chain.New(sgr, chain.WithSeed(9))
	require.NoError(t, err)
	b, err := chain.New(sgr, chain.WithSeed(9))
	require.NoError(t, err)

	ra, err := a.Run(context.Background(), "SE", 30, 5)
	require.NoError(t, err)
	rb, err := b.Run(context.Background(), "SE", 30, 5)
	require.NoError(t, err)
	assert.Equal(t, ra.Trials, rb.Trials)
}

func TestEngine_SeedReplaysRunSequence(t *testing.T) {
	a, err := chain.New(sgr, chain.WithSeed(9))
	require.NoError(t, err)
	b, err := chain.New(sgr, chain.WithSeed(9))
	require.NoError(t, err)

	first, err := a.Run(context.Background(), "SE", 30, 5)
	require.NoError(t, err)
	second, err := a.Run(context.Background(), "SE", 30, 5)
	require.NoError(t, err)
	assert.NotEqual(t, first.Trials, second.Trials, "a second run continues the stream")

	replayFirst, err := b.Run(context.Background(), "SE", 30, 5)
	require.NoError(t, err)
	replaySecond, err := b.Run(context.Background(), "SE", 30, 5)
	require.NoError(t, err)
	assert.Equal(t, first.Trials, replayFirst.Trials)
	assert.Equal(t, second.Trials, replaySecond.Trials)
}

func TestEngine_UserHooks(t *testing.T) {
	trials := 0
	eng, err := chain.New(sgr, chain.WithSeed(3), chain.WithLifecycleHooks(domain.LifecycleHooks{
		OnTrialEnd: func(context.Context, *domain.TrialEvent) { trials++ },
	}))
	require.NoError(t, err)

	_, err = eng.Run(context.Background(), "SE", 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, trials)
}

func TestFacade_ValidateAndAggregate(t *testing.T) {
	assert.NoError(t, chain.Validate([][]float64{{1}}, []string{"only"}))
	assert.ErrorIs(t, chain.Validate([][]float64{{0.9}}, []string{"only"}), domain.ErrRowSum)

	freq, dwell, err := chain.Aggregate([]domain.Trial{{"A", "A", "A", "A", "A"}})
	require.NoError(t, err)
	assert.Equal(t, domain.Frequencies{"A": 1}, freq)
	assert.Equal(t, domain.DwellTimes{"A": 1}, dwell)

	_, _, err = chain.Aggregate(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestPrinter(t *testing.T) {
	eng, err := chain.New(sgr, chain.WithSeed(5))
	require.NoError(t, err)
	res, err := eng.Run(context.Background(), "SE", 10, 2)
	require.NoError(t, err)

	t.Run("Plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&chain.Printer{Output: &buf, Plain: true}).Print(res))
		assert.Contains(t, buf.String(), "SE: ")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, (&chain.Printer{Output: &buf, JSON: true}).Print(res))

		var decoded domain.Result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, res.Trajectories, decoded.Trajectories)
		assert.Equal(t, res.Total, decoded.Total)
	})

	t.Run("Markdown With Renderer", func(t *testing.T) {
		var buf bytes.Buffer
		upper := func(s string) (string, error) { return strings.ToUpper(s), nil }
		p := &chain.Printer{Output: &buf, Renderer: upper}
		require.NoError(t, p.Print(res))
		assert.Contains(t, buf.String(), "# SIMULATION REPORT")
	})

	t.Run("Missing Output", func(t *testing.T) {
		assert.Error(t, (&chain.Printer{}).Print(res))
	})
}
