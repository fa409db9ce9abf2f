package skills

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zachkp/microx-portfolio/internal/dom"
)

func TestAnimateSetsWidths(t *testing.T) {
	doc := dom.NewMemDocument(dom.NewMemWindow(1280, 800))
	goBar := doc.Add("", "skill-progress").SetAttr(ProgressAttr, "90")
	cssBar := doc.Add("", "skill-progress").SetAttr(ProgressAttr, "75")

	a := New(doc.QueryAll(".skill-progress"))
	a.Animate()
	require.Equal(t, "90%", goBar.Style("width"))
	require.Equal(t, "75%", cssBar.Style("width"))

	a.Animate()
	require.Equal(t, "90%", goBar.Style("width"))
}
