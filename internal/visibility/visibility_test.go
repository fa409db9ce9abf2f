package visibility

import (
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

func setup(opts Options) (*dom.MemWindow, *dom.MemDocument,
	*scheduler.Virtual, *ScrollObserver) {

	win := dom.NewMemWindow(1280, 800)
	doc := dom.NewMemDocument(win)
	clock := scheduler.NewVirtual()

	return win, doc, clock, NewScrollObserver(win, clock, opts)
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name      string
		rect      dom.Rect
		top, bot  float64
		wantRatio float64
	}{
		{"fully inside", dom.Rect{Top: 100, Height: 100}, 0, 800, 1},
		{"half inside", dom.Rect{Top: 700, Height: 200}, 0, 800, 0.5},
		{"below", dom.Rect{Top: 900, Height: 100}, 0, 800, 0},
		{"above", dom.Rect{Top: 0, Height: 100}, 200, 1000, 0},
		{"touching edge", dom.Rect{Top: 800, Height: 100}, 0, 800, 0},
		{"zero height inside", dom.Rect{Top: 10}, 0, 800, 1},
		{"zero height outside", dom.Rect{Top: 900}, 0, 800, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Ratio(tc.rect, tc.top, tc.bot)
			require.InDelta(t, tc.wantRatio, got, 1e-9)
		})
	}
}

func TestObserveFiresOnEntry(t *testing.T) {
	win, doc, clock, obs := setup(Options{Threshold: 0.5})
	about := doc.Add("about").SetRect(1000, 400)

	fired := 0
	obs.Observe(about, func(el dom.Element) {
		require.Equal(t, "about", el.ID())
		fired++
	})
	clock.RunPending()
	require.Zero(t, fired)

	// 100 of 400 px visible: below threshold.
	win.ScrollTo(300)
	require.Zero(t, fired)

	// 300 of 400 px visible.
	win.ScrollTo(500)
	require.Equal(t, 1, fired)

	// Still visible, no new transition.
	win.ScrollTo(600)
	require.Equal(t, 1, fired)

	// Leave and come back: repeatable observation fires again.
	win.ScrollTo(0)
	win.ScrollTo(600)
	require.Equal(t, 2, fired)
}

func TestObserveInitiallyVisible(t *testing.T) {
	_, doc, clock, obs := setup(Options{Threshold: 0.1})
	hero := doc.Add("hero").SetRect(0, 600)

	fired := false
	obs.Observe(hero, func(dom.Element) { fired = true })
	require.False(t, fired, "initial evaluation is asynchronous")

	clock.RunPending()
	require.True(t, fired)
}

func TestOnceUnobserves(t *testing.T) {
	win, doc, clock, obs := setup(Options{Threshold: 0.3})
	resume := doc.Add("resume").SetRect(1000, 500)

	fired := 0
	Once(obs, resume, func(dom.Element) { fired++ })
	clock.RunPending()

	win.ScrollTo(1000)
	win.ScrollTo(0)
	win.ScrollTo(1000)

	require.Equal(t, 1, fired)
	require.Empty(t, obs.entries)
}

func TestRootMarginDelaysTrigger(t *testing.T) {
	win, doc, clock, obs := setup(Options{
		Threshold: 0.1, RootMarginBottom: 100,
	})
	card := doc.Add("card").SetRect(850, 100)

	fired := false
	obs.Observe(card, func(dom.Element) { fired = true })
	clock.RunPending()

	// Viewport bottom is 800+100-100 = 800: card starts at 850.
	win.ScrollTo(100)
	require.False(t, fired)

	// Viewport bottom 860: 10 of 100 px visible.
	win.ScrollTo(160)
	require.True(t, fired)
}

func TestOptionalHelpersSkipAbsent(t *testing.T) {
	_, _, clock, obs := setup(Options{})

	ObserveOptional(obs, fn.None[dom.Element](), func(dom.Element) {
		t.Fatal("absent element fired")
	})
	OnceOptional(obs, fn.None[dom.Element](), func(dom.Element) {
		t.Fatal("absent element fired")
	})
	clock.RunPending()

	require.Empty(t, obs.entries)
	require.Zero(t, clock.Pending())
}
