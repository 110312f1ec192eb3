package padmenu

import (
	"context"
	"errors"
)

// activate applies an OK press to the item at index. The order matters:
// exclusion clears siblings before the disabled check, which then gates the
// item's own checked state and hook.
func (e *Engine) activate(ctx context.Context, m *Menu, index int) (MenuItem, ActivationResult) {
	store := m.Items
	item := store.Item(index)
	mutable, isMutable := store.(MutableItemStore)

	total := store.Count()
	for _, sibling := range item.Flags.Excluded() {
		if sibling >= total {
			continue
		}
		if isMutable {
			mutable.ClearFlags(sibling, FlagChecked)
		} else if sibling == index {
			item.Flags &^= FlagChecked
		}
	}
	if isMutable {
		item.Flags = mutable.Flags(index)
	}

	if item.Flags.Disabled() {
		e.logger.Debug("Activation ignored for disabled item", "menu", m.Title, "index", index)
		return item, ActivationDisabled
	}

	switch {
	case item.Flags.Toggle():
		if isMutable {
			if item.Flags.Checked() {
				mutable.ClearFlags(index, FlagChecked)
			} else {
				mutable.SetFlags(index, FlagChecked)
			}
		}
		item.Flags ^= FlagChecked
	case item.Flags.Checkable():
		if isMutable {
			mutable.SetFlags(index, FlagChecked)
		}
		item.Flags |= FlagChecked
	}

	if !isMutable && (item.Flags.Toggle() || item.Flags.Checkable() || item.Flags&ExcludeMask != 0) {
		e.logger.Debug("Checked state not stored for read-only menu", "menu", m.Title, "index", index)
	}

	if item.Hook == nil {
		return item, ActivationApplied
	}

	if e.abortPending() {
		e.logger.Debug("Hook skipped, abort pending", "menu", m.Title, "index", index)
		return item, ActivationAborted
	}

	err := e.runHook(ctx, item)
	pending := e.abortPending()
	if pending || errors.Is(err, ErrAborted) {
		e.logger.Debug("Hook aborted", "menu", m.Title, "index", index)
		return item, ActivationAborted
	}
	if err != nil {
		e.logger.Error("Menu hook failed", "menu", m.Title, "index", index, "error", err)
	}

	return item, ActivationApplied
}

// abortPending consumes a pending abort request.
func (e *Engine) abortPending() bool {
	if e.abort == nil || !e.abort.AbortRequested() {
		return false
	}
	e.abort.ClearAbort()
	return true
}

func (e *Engine) runHook(ctx context.Context, item MenuItem) error {
	e.hookDepth++
	defer func() { e.hookDepth-- }()

	if armer, ok := e.abort.(AbortArmer); ok {
		armer.ArmAbort()
		defer armer.DisarmAbort()
	}
	return item.Hook(withAbortSource(ctx, e.abort), item.Userdata)
}
