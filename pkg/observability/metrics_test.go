package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/screenstack/pkg/navigation"
	"github.com/aretw0/screenstack/pkg/screen"
	"github.com/aretw0/screenstack/pkg/session"
	"github.com/aretw0/screenstack/pkg/terminal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	script := terminal.NewScript("open", "nope")
	ctx := session.NewContext(context.Background(), session.New(script, m.Hooks(), nil))

	stack := navigation.New(navigation.WithTitle("Main"), navigation.WithAnimationDelay(0))
	detail := screen.New("detail", screen.Text, nil, screen.WithName("detail"))
	home := screen.New("home", screen.OneOf("open"), func(ctx context.Context, _ string) {
		stack.Push(ctx, detail, false)
	}, screen.WithName("home"))
	stack.Push(ctx, home, false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ScreenExecutions.WithLabelValues("home")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ScreenExecutions.WithLabelValues("detail")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InputRejections.WithLabelValues("home")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Navigations.WithLabelValues("push")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.StackDepth.WithLabelValues("Main")))

	stack.Pop(ctx, false) // home re-executes; input exhausted
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Navigations.WithLabelValues("pop")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.InputRejections.WithLabelValues("home")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StackDepth.WithLabelValues("Main")))
}

func TestMetrics_StackDepthPerStackName(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	ctx := session.NewContext(context.Background(), session.New(terminal.NewScript(), m.Hooks(), nil))

	outer := navigation.New(navigation.WithName("outer"), navigation.WithAnimationDelay(0))
	inner := navigation.New(navigation.WithName("inner"), navigation.WithAnimationDelay(0))
	idle := screen.New("idle", screen.Text, nil)

	outer.Push(ctx, idle, false)
	outer.Push(ctx, idle, false)
	inner.Push(ctx, idle, false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.StackDepth.WithLabelValues("outer")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StackDepth.WithLabelValues("inner")))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	m.Navigations.WithLabelValues("push").Inc()

	srv := httptest.NewServer(Router(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	count, err := testutil.GatherAndCount(reg, "screenstack_navigations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	health, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}
