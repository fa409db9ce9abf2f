package preloader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

func TestDismiss(t *testing.T) {
	el := dom.NewMemDocument(nil).Add("preloader")
	clock := scheduler.NewVirtual()

	New(clock, el).Dismiss()

	clock.Advance(FadeDelay - time.Millisecond)
	require.Empty(t, el.Style("opacity"))

	clock.Advance(time.Millisecond)
	require.Equal(t, "0", el.Style("opacity"))
	require.Empty(t, el.Style("display"))

	clock.Advance(RemoveDelay)
	require.Equal(t, "none", el.Style("display"))
}
