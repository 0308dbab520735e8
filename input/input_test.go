package input_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/comalice/carousel"
	"github.com/comalice/carousel/input"
	"github.com/comalice/carousel/testutil"
)

func newController(t *testing.T, total int) (*carousel.Controller, *clocktesting.FakeClock, *testutil.Presenter) {
	t.Helper()
	clk := clocktesting.NewFakeClock(time.Now())
	p := &testutil.Presenter{}
	c := carousel.New(carousel.WithPresenter(p), carousel.WithClock(clk))
	t.Cleanup(c.Teardown)
	c.Initialize(context.Background(), total)
	return c, clk, p
}

func TestArrows(t *testing.T) {
	c, _, _ := newController(t, 4)
	ctx := context.Background()
	a := input.Arrows{Nav: c}

	require.Equal(t, carousel.OutcomeMoved, a.Prev(ctx).Wait())
	assert.Equal(t, 3, c.ActiveIndex())
	require.Equal(t, carousel.OutcomeMoved, a.Next(ctx).Wait())
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestArrowsRestartTimer(t *testing.T) {
	c, clk, p := newController(t, 4)
	ctx := context.Background()

	clk.Step(4 * time.Second)
	require.Equal(t, carousel.OutcomeMoved, input.Arrows{Nav: c}.Next(ctx).Wait())

	clk.Step(4 * time.Second)
	assert.Never(t, func() bool { return len(p.Exits()) > 1 }, 30*time.Millisecond, 2*time.Millisecond)

	clk.Step(time.Second)
	assert.Eventually(t, func() bool { return c.ActiveIndex() == 2 }, time.Second, 2*time.Millisecond)
}

func TestDotsClick(t *testing.T) {
	c, _, p := newController(t, 5)
	ctx := context.Background()
	d := input.Dots{Nav: c}

	require.Equal(t, carousel.OutcomeMoved, d.Click(ctx, 1).Wait())

	tr := d.Click(ctx, 4)
	require.NotNil(t, tr)
	assert.Equal(t, 3, tr.Delta())
	assert.Equal(t, carousel.OutcomeMoved, tr.Wait())
	assert.Equal(t, 4, c.ActiveIndex())
	assert.Len(t, p.Exits(), 2)
}

func TestDotsIgnoresActiveAndOutOfRange(t *testing.T) {
	c, _, p := newController(t, 3)
	ctx := context.Background()
	d := input.Dots{Nav: c}

	assert.Nil(t, d.Click(ctx, 0))
	assert.Nil(t, d.Click(ctx, 3))
	assert.Nil(t, d.Click(ctx, -1))
	assert.Empty(t, p.Exits())
}

type recordingNav struct {
	active, total int
	targets       []int
	deltas        []int
	resets        int
}

func (n *recordingNav) GoTo(_ context.Context, delta int) *carousel.Transition {
	n.deltas = append(n.deltas, delta)
	return nil
}

func (n *recordingNav) GoToIndex(_ context.Context, target int) *carousel.Transition {
	n.targets = append(n.targets, target)
	return nil
}

func (n *recordingNav) ResetTimer()      { n.resets++ }
func (n *recordingNav) ActiveIndex() int { return n.active }
func (n *recordingNav) Total() int       { return n.total }

func TestDotsClickPassesTarget(t *testing.T) {
	nav := &recordingNav{active: 1, total: 5}
	input.Dots{Nav: nav}.Click(context.Background(), 4)

	assert.Equal(t, []int{4}, nav.targets, "dot clicks must hand the controller an absolute target")
	assert.Empty(t, nav.deltas)
	assert.Equal(t, 1, nav.resets)
}

func TestDirection(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"ArrowLeft", -1},
		{"ArrowRight", 1},
		{"left", -1},
		{"right", 1},
		{"h", -1},
		{"l", 1},
		{"ArrowUp", 0},
		{"enter", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, input.Direction(tt.key), "Direction(%q)", tt.key)
	}
}

func TestKeyboardPress(t *testing.T) {
	c, _, _ := newController(t, 3)
	ctx := context.Background()
	k := input.Keyboard{Nav: c}

	tr, ok := k.Press(ctx, "ArrowLeft")
	require.True(t, ok)
	assert.Equal(t, carousel.OutcomeMoved, tr.Wait())
	assert.Equal(t, 2, c.ActiveIndex())

	tr, ok = k.Press(ctx, "x")
	assert.False(t, ok)
	assert.Nil(t, tr)
}

func TestDetailToggle(t *testing.T) {
	c, _, _ := newController(t, 3)
	ctx := context.Background()
	dt := input.NewDetailToggle(c)

	assert.True(t, dt.Toggle(0))
	assert.True(t, dt.Expanded(0))
	assert.True(t, c.Paused())
	assert.Equal(t, carousel.DropPaused, c.GoTo(ctx, 1).DropReason())

	assert.True(t, dt.Toggle(2))
	assert.False(t, dt.Toggle(0))
	assert.True(t, c.Paused(), "panel 2 still open")

	assert.False(t, dt.Toggle(2))
	assert.False(t, c.Paused())
	assert.True(t, c.Snapshot().TimerArmed)
}
