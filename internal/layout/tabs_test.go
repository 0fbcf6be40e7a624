package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/layout"
)

func newView(name string) *entity.View {
	return entity.NewView(entity.DocumentID(name), name)
}

// buildReference builds the four-pane layout used across the navigation
// and swap tests, on a 180x80 workspace:
//
//	| l0 | l2 |    |
//	|   l1    | r0 |
func buildReference(t *testing.T) (ts *layout.Tabs, tab entity.TabID, l0, r0, l1, l2 entity.ViewID) {
	t.Helper()

	ts = layout.New(entity.NewRect(0, 0, 180, 80))
	tab = ts.Active()

	l0 = ts.Insert(tab, newView("l0"))
	r0 = ts.Split(tab, newView("r0"), layout.Vertical)

	ts.SetFocus(tab, l0)
	l1 = ts.Split(tab, newView("l1"), layout.Horizontal)

	ts.SetFocus(tab, l0)
	l2 = ts.Split(tab, newView("l2"), layout.Vertical)

	return ts, tab, l0, r0, l1, l2
}

func viewIDs(ts *layout.Tabs, tab entity.TabID) []entity.ViewID {
	var ids []entity.ViewID
	for _, e := range ts.TabViews(tab) {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestNew_StartsWithOneEmptyTab(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	tab := ts.Active()

	assert.Equal(t, 1, ts.TabCount())
	assert.True(t, ts.IsEmpty(tab))
	assert.True(t, ts.AllEmpty())
	assert.Equal(t, entity.NewRect(0, 0, 80, 24), ts.TabArea(tab))

	// an empty tab focuses its root container
	assert.Equal(t, ts.Focus(tab), ts.ActiveView())
	_, ok := ts.TryView(ts.Focus(tab))
	assert.False(t, ok)
}

func TestInsert_FirstViewTakesFocus(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	tab := ts.Active()

	id := ts.Insert(tab, newView("a"))

	assert.False(t, ts.IsEmpty(tab))
	assert.Equal(t, id, ts.Focus(tab))
	assert.True(t, ts.TabContains(tab, id))
	assert.Equal(t, "a", ts.View(id).Name)
	assert.Equal(t, id, ts.View(id).ID, "view learns its handle on insert")
	assert.Equal(t, entity.NewRect(0, 0, 80, 24), ts.View(id).Area)
}

func TestInsert_PlacesSiblingAfterFocus(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 90, 24))
	tab := ts.Active()

	a := ts.Insert(tab, newView("a"))
	c := ts.Insert(tab, newView("c"))

	ts.SetFocus(tab, a)
	b := ts.Insert(tab, newView("b"))

	assert.Equal(t, []entity.ViewID{a, b, c}, viewIDs(ts, tab))
	assert.Equal(t, b, ts.Focus(tab))
}

func TestSplit_SameAxisInsertsSibling(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 90, 24))
	tab := ts.Active()

	a := ts.Insert(tab, newView("a"))
	b := ts.Split(tab, newView("b"), layout.Vertical)

	// the root container already splits vertically, so no new container
	// appears and both views stay direct siblings
	assert.Equal(t, []entity.ViewID{a, b}, viewIDs(ts, tab))
	assert.Equal(t, b, ts.Focus(tab))
	assert.Equal(t, uint16(0), ts.View(a).Area.Y)
	assert.Equal(t, uint16(0), ts.View(b).Area.Y)
}

func TestSplit_CrossAxisWrapsFocusedView(t *testing.T) {
	ts, tab, l0, r0, l1, l2 := buildReference(t)

	// pre-order: l0 and l2 inside the inner column pair, then l1, then r0
	assert.Equal(t, []entity.ViewID{l0, l2, l1, r0}, viewIDs(ts, tab))
	assert.Equal(t, l2, ts.Focus(tab))

	// every node reachable from the root is a member of the tab
	for _, id := range []entity.ViewID{l0, r0, l1, l2} {
		assert.True(t, ts.TabContains(tab, id))
	}
}

func TestSplit_EmptyTabFallsBackToInsert(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	tab := ts.Active()

	id := ts.Split(tab, newView("a"), layout.Horizontal)

	assert.Equal(t, []entity.ViewID{id}, viewIDs(ts, tab))
	assert.Equal(t, entity.NewRect(0, 0, 80, 24), ts.View(id).Area)
}

func TestRemove_MovesFocusToPreviousView(t *testing.T) {
	ts, tab, l0, _, _, l2 := buildReference(t)

	require.Equal(t, l2, ts.Focus(tab))
	ts.Remove(tab, l2)

	assert.Equal(t, l0, ts.Focus(tab))
	assert.False(t, ts.Exists(l2))
	assert.False(t, ts.TabContains(tab, l2))
}

func TestRemove_CollapsesEmptiedContainers(t *testing.T) {
	ts, tab, l0, r0, l1, l2 := buildReference(t)

	ts.Remove(tab, l2)
	ts.Remove(tab, l0)

	// the column pair and then the row pair collapsed away; l1 spans the
	// full left column again
	assert.Equal(t, []entity.ViewID{l1, r0}, viewIDs(ts, tab))
	assert.Equal(t, entity.NewRect(0, 0, 90, 80), ts.View(l1).Area)
	assert.Equal(t, entity.NewRect(91, 0, 89, 80), ts.View(r0).Area)
}

func TestRemove_LastViewEmptiesTab(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	tab := ts.Active()

	id := ts.Insert(tab, newView("a"))
	ts.Remove(tab, id)

	assert.True(t, ts.IsEmpty(tab))
	assert.True(t, ts.AllEmpty())
	// focus falls back to the root container
	_, ok := ts.TryView(ts.Focus(tab))
	assert.False(t, ok)

	// the emptied tab accepts new views again
	next := ts.Insert(tab, newView("b"))
	assert.Equal(t, next, ts.Focus(tab))
	assert.False(t, ts.IsEmpty(tab))
}

func TestNewTab_BecomesActiveAndEmpty(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	ts.Insert(first, newView("a"))

	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))

	assert.Equal(t, second, ts.Active())
	assert.True(t, ts.IsEmpty(second))
	assert.False(t, ts.IsEmpty(first))
	assert.False(t, ts.AllEmpty())
	assert.Equal(t, []entity.TabID{first, second}, ts.TabIDs())
}

func TestCloseTab_RefusesLastTab(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))

	_, ok := ts.CloseTab(ts.Active())
	assert.False(t, ok)
	assert.Equal(t, 1, ts.TabCount())
}

func TestCloseTab_ActivatesPreviousInCreationOrder(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))
	third := ts.NewTab(entity.NewRect(0, 0, 80, 24))

	ts.SetActive(second)
	active, ok := ts.CloseTab(second)
	require.True(t, ok)

	assert.Equal(t, first, active)
	assert.Equal(t, first, ts.Active())
	assert.Equal(t, []entity.TabID{first, third}, ts.TabIDs())
}

func TestCloseTab_FirstTabWrapsToLast(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))

	ts.SetActive(first)
	active, ok := ts.CloseTab(first)
	require.True(t, ok)

	assert.Equal(t, second, active)
}

func TestCloseTab_ReleasesItsNodes(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	a := ts.Insert(first, newView("a"))

	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))
	b := ts.Insert(second, newView("b"))

	_, ok := ts.CloseTab(second)
	require.True(t, ok)

	assert.False(t, ts.Exists(b))
	assert.True(t, ts.Exists(a))
}

func TestNextPrevTab_WrapAround(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))
	third := ts.NewTab(entity.NewRect(0, 0, 80, 24))

	require.Equal(t, third, ts.Active())
	assert.Equal(t, first, ts.NextTab())
	assert.Equal(t, second, ts.NextTab())
	assert.Equal(t, first, ts.PrevTab())
	assert.Equal(t, third, ts.PrevTab())
}

func TestSetFocus_PanicsOnForeignNode(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	ts.Insert(first, newView("a"))

	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))
	b := ts.Insert(second, newView("b"))

	assert.Panics(t, func() { ts.SetFocus(first, b) })
}

func TestResizeTab_ReportsChange(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	tab := ts.Active()
	id := ts.Insert(tab, newView("a"))

	assert.False(t, ts.ResizeTab(tab, entity.NewRect(0, 0, 80, 24)), "same rectangle is a no-op")

	require.True(t, ts.ResizeTab(tab, entity.NewRect(0, 0, 120, 40)))
	assert.Equal(t, entity.NewRect(0, 0, 120, 40), ts.TabArea(tab))
	assert.Equal(t, entity.NewRect(0, 0, 120, 40), ts.View(id).Area)
}

func TestResize_AppliesToEveryTab(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))

	require.True(t, ts.Resize(entity.NewRect(0, 0, 100, 30)))
	assert.Equal(t, entity.NewRect(0, 0, 100, 30), ts.TabArea(first))
	assert.Equal(t, entity.NewRect(0, 0, 100, 30), ts.TabArea(second))

	assert.False(t, ts.Resize(entity.NewRect(0, 0, 100, 30)))
}

func TestTranspose_FlipsFocusedParentAxis(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 180, 80))
	tab := ts.Active()

	a := ts.Insert(tab, newView("a"))
	b := ts.Insert(tab, newView("b"))

	// side by side before, stacked after
	require.Equal(t, entity.NewRect(0, 0, 90, 80), ts.View(a).Area)
	ts.Transpose(tab)

	assert.Equal(t, entity.NewRect(0, 0, 180, 40), ts.View(a).Area)
	assert.Equal(t, entity.NewRect(0, 40, 180, 40), ts.View(b).Area)
}

func TestAllViews_MarksOnlyActiveTabFocus(t *testing.T) {
	ts := layout.New(entity.NewRect(0, 0, 80, 24))
	first := ts.Active()
	a := ts.Insert(first, newView("a"))

	second := ts.NewTab(entity.NewRect(0, 0, 80, 24))
	b := ts.Insert(second, newView("b"))

	entries := ts.AllViews()
	require.Len(t, entries, 2)

	focused := map[entity.ViewID]bool{}
	for _, e := range entries {
		focused[e.ID] = e.Focused
	}
	assert.False(t, focused[a], "inactive tab's focus stays unmarked")
	assert.True(t, focused[b])
}
