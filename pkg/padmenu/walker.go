package padmenu

// NextVisible returns the first item after index that is not hidden, wrapping to
// the first item past the end. The store must hold at least one visible item,
// otherwise NextVisible never returns.
func NextVisible(store ItemStore, index int) int {
	total := store.Count()
	for {
		index++
		if index >= total {
			index = 0
		}
		if !store.Flags(index).Hidden() {
			return index
		}
	}
}

// PrevVisible is the mirror of NextVisible, wrapping to the last item.
func PrevVisible(store ItemStore, index int) int {
	total := store.Count()
	for {
		index--
		if index < 0 {
			index = total - 1
		}
		if !store.Flags(index).Hidden() {
			return index
		}
	}
}

// HasVisible reports whether the store holds an item that is not hidden.
func HasVisible(store ItemStore) bool {
	for i, n := 0, store.Count(); i < n; i++ {
		if !store.Flags(i).Hidden() {
			return true
		}
	}
	return false
}
