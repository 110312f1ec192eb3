package padmenu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkedCount(store ItemStore) int {
	n := 0
	for i := 0; i < store.Count(); i++ {
		if store.Flags(i).Checked() {
			n++
		}
	}
	return n
}

func radioMenu() *Menu {
	return &Menu{Items: RAMItems{
		{Label: "low", Flags: FlagCheckable | FlagChecked | Exclude(1, 2)},
		{Label: "mid", Flags: FlagCheckable | Exclude(0, 2)},
		{Label: "high", Flags: FlagCheckable | Exclude(0, 1)},
	}}
}

func TestActivateExclusionGroupKeepsOneChecked(t *testing.T) {
	rig := newTestRig(6)
	m := radioMenu()

	for _, index := range []int{1, 2, 2, 0, 1} {
		_, result := rig.engine.activate(context.Background(), m, index)
		require.Equal(t, ActivationApplied, result)
		assert.True(t, m.Items.Flags(index).Checked())
		assert.Equal(t, 1, checkedCount(m.Items), "after activating %d", index)
	}
}

func TestActivateDisabledStillClearsExcludedSiblings(t *testing.T) {
	rig := newTestRig(6)
	called := false
	m := &Menu{Items: RAMItems{
		{Label: "off", Flags: FlagCheckable | FlagDisabled | Exclude(1), Hook: func(context.Context, any) error {
			called = true
			return nil
		}},
		{Label: "on", Flags: FlagCheckable | FlagChecked | Exclude(0)},
	}}

	_, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationDisabled, result)
	assert.False(t, called)
	assert.False(t, m.Items.Flags(0).Checked())
	assert.False(t, m.Items.Flags(1).Checked())
}

func TestActivateToggleTwiceRestoresState(t *testing.T) {
	rig := newTestRig(6)
	m := &Menu{Items: RAMItems{{Label: "wifi", Flags: FlagToggle}}}

	item, _ := rig.engine.activate(context.Background(), m, 0)
	assert.True(t, item.Flags.Checked())
	assert.True(t, m.Items.Flags(0).Checked())

	item, _ = rig.engine.activate(context.Background(), m, 0)
	assert.False(t, item.Flags.Checked())
	assert.Equal(t, FlagToggle, m.Items.Flags(0))
}

func TestActivateCheckableIsIdempotent(t *testing.T) {
	rig := newTestRig(6)
	m := &Menu{Items: RAMItems{{Label: "agree", Flags: FlagCheckable}}}

	rig.engine.activate(context.Background(), m, 0)
	rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, FlagCheckable|FlagChecked, m.Items.Flags(0))
}

func TestActivateReadOnlyMenuOnlyChangesStagedItem(t *testing.T) {
	rig := newTestRig(6)
	items := ROMItems{
		{Label: "a", Flags: FlagToggle | Exclude(1)},
		{Label: "b", Flags: FlagCheckable | FlagChecked},
		{},
	}
	m := &Menu{Items: items}

	item, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationApplied, result)
	assert.True(t, item.Flags.Checked())
	assert.False(t, items[0].Flags.Checked())
	assert.True(t, items[1].Flags.Checked())
}

func TestActivateIgnoresExclusionBeyondItemCount(t *testing.T) {
	rig := newTestRig(6)
	m := &Menu{Items: RAMItems{{Label: "a", Flags: FlagCheckable | Exclude(1, 9)}, {Label: "b", Flags: FlagChecked}}}

	_, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationApplied, result)
	assert.False(t, m.Items.Flags(1).Checked())
	assert.True(t, m.Items.Flags(0).Checked())
}

func TestActivateRunsHookWithUserdata(t *testing.T) {
	rig := newTestRig(6)
	var got any
	var armedDuringHook int
	m := &Menu{Items: RAMItems{{Label: "a", Userdata: 42, Hook: func(ctx context.Context, userdata any) error {
		got = userdata
		armedDuringHook = rig.abort.armed
		return nil
	}}}}

	_, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationApplied, result)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, armedDuringHook)
	assert.Equal(t, 0, rig.abort.armed)
}

func TestActivateHookErrorStillApplies(t *testing.T) {
	rig := newTestRig(6)
	m := &Menu{Items: RAMItems{{Label: "a", Flags: FlagToggle, Hook: func(context.Context, any) error {
		return errors.New("boom")
	}}}}

	_, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationApplied, result)
	assert.True(t, m.Items.Flags(0).Checked())
}

func TestActivateSkipsHookWhenAbortPending(t *testing.T) {
	rig := newTestRig(6)
	rig.abort.requested = true
	called := false
	m := &Menu{Items: RAMItems{{Label: "a", Hook: func(context.Context, any) error {
		called = true
		return nil
	}}}}

	_, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationAborted, result)
	assert.False(t, called)
	assert.False(t, rig.abort.requested)
}

func TestActivateAbortRaisedDuringHook(t *testing.T) {
	rig := newTestRig(6)
	m := &Menu{Items: RAMItems{{Label: "a", Hook: func(ctx context.Context, _ any) error {
		assert.False(t, AbortRequested(ctx))
		rig.abort.requested = true
		assert.True(t, AbortRequested(ctx))
		return nil
	}}}}

	_, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationAborted, result)
	assert.Equal(t, 1, rig.abort.cleared)
}

func TestActivateHookReportsAbort(t *testing.T) {
	rig := newTestRig(6)
	m := &Menu{Items: RAMItems{{Label: "a", Hook: func(context.Context, any) error {
		rig.abort.requested = true
		return ErrAborted
	}}}}

	_, result := rig.engine.activate(context.Background(), m, 0)

	assert.Equal(t, ActivationAborted, result)
	assert.False(t, rig.abort.requested, "the abort request is consumed")
}

func TestAbortRequestedFollowsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, AbortRequested(ctx))
	cancel()
	assert.True(t, AbortRequested(ctx))
}
