package menufile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawndev/padmenu/pkg/padmenu"
)

const submenuPrefix = "submenu:"

var (
	ErrUnknownMenu = errors.New("unknown menu")
	ErrUnknownHook = errors.New("unknown hook")
	ErrUnknownFlag = errors.New("unknown flag")
	ErrNoRunner    = errors.New("menus were built without a runner")
)

var itemFlagNames = map[string]padmenu.ItemFlags{
	"checked":   padmenu.FlagChecked,
	"checkable": padmenu.FlagCheckable,
	"toggle":    padmenu.FlagToggle,
	"hidden":    padmenu.FlagHidden,
	"disabled":  padmenu.FlagDisabled,
}

var menuFlagNames = map[string]padmenu.MenuFlags{
	"top_level":      padmenu.MenuTopLevel,
	"sticky":         padmenu.MenuSticky,
	"save_selection": padmenu.MenuSaveSelection,
}

// Runner shows a menu. *padmenu.Engine satisfies it.
type Runner interface {
	Run(ctx context.Context, m *padmenu.Menu) (any, error)
}

// Hooks maps the hook names used in a file to functions.
type Hooks map[string]padmenu.Hook

// Set is a built collection of menus.
type Set struct {
	root  string
	order []string
	menus map[string]*padmenu.Menu
}

func (s *Set) Root() *padmenu.Menu {
	return s.menus[s.root]
}

func (s *Set) Menu(name string) (*padmenu.Menu, bool) {
	m, ok := s.menus[name]
	return m, ok
}

// Names returns the menu names in file order.
func (s *Set) Names() []string {
	return append([]string(nil), s.order...)
}

// Build turns f into menus. Hooks named "submenu:<menu>" run that menu through
// runner; cancelling the nested menu returns to the parent. runner may be nil
// when the menus are only inspected.
func (f *File) Build(runner Runner, hooks Hooks) (*Set, error) {
	if len(f.Menus) == 0 {
		return nil, fmt.Errorf("no menus defined: %w", ErrUnknownMenu)
	}

	s := &Set{
		root:  f.Root,
		menus: make(map[string]*padmenu.Menu, len(f.Menus)),
	}
	if s.root == "" {
		s.root = f.Menus[0].Name
	}

	// Menus are registered first so submenu hooks can point forwards.
	for _, def := range f.Menus {
		if def.Name == "" {
			return nil, errors.New("menu without a name")
		}
		if _, dup := s.menus[def.Name]; dup {
			return nil, fmt.Errorf("menu %q defined twice", def.Name)
		}
		s.menus[def.Name] = &padmenu.Menu{}
		s.order = append(s.order, def.Name)
	}
	if _, ok := s.menus[s.root]; !ok {
		return nil, fmt.Errorf("root %q: %w", s.root, ErrUnknownMenu)
	}

	for _, def := range f.Menus {
		if err := s.build(def, runner, hooks); err != nil {
			return nil, fmt.Errorf("menu %q: %w", def.Name, err)
		}
	}
	return s, nil
}

func (s *Set) build(def MenuDef, runner Runner, hooks Hooks) error {
	m := s.menus[def.Name]
	m.Title = def.Title
	m.Selected = def.Selected

	for _, name := range def.Flags {
		flag, ok := menuFlagNames[name]
		if !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownFlag)
		}
		m.Flags |= flag
	}

	items := make([]padmenu.MenuItem, 0, len(def.Items)+1)
	for i, itemDef := range def.Items {
		item, err := s.buildItem(itemDef, runner, hooks)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	switch strings.ToLower(def.Storage) {
	case "", "ram":
		m.Items = padmenu.RAMItems(items)
	case "rom":
		m.Items = padmenu.ROMItems(append(items, padmenu.MenuItem{}))
	default:
		return fmt.Errorf("unknown storage %q", def.Storage)
	}
	return nil
}

func (s *Set) buildItem(def ItemDef, runner Runner, hooks Hooks) (padmenu.MenuItem, error) {
	item := padmenu.MenuItem{Label: def.Label, Userdata: def.Value}
	if def.Value == "" {
		item.Userdata = def.Label
	}
	if def.Label == "" {
		return item, errors.New("item without a label")
	}

	if def.Literal {
		item.Flags |= padmenu.FlagRAMLabel
	}
	for _, name := range def.Flags {
		flag, ok := itemFlagNames[name]
		if !ok {
			return item, fmt.Errorf("%q: %w", name, ErrUnknownFlag)
		}
		item.Flags |= flag
	}
	for _, sibling := range def.Exclude {
		if sibling < 0 || sibling >= padmenu.MaxExclusionSiblings {
			return item, fmt.Errorf("exclusion index %d outside 0..%d", sibling, padmenu.MaxExclusionSiblings-1)
		}
	}
	item.Flags |= padmenu.Exclude(def.Exclude...)

	hook, err := s.hook(def.Hook, runner, hooks)
	if err != nil {
		return item, err
	}
	item.Hook = hook
	return item, nil
}

func (s *Set) hook(name string, runner Runner, hooks Hooks) (padmenu.Hook, error) {
	if name == "" {
		return nil, nil
	}

	if target, ok := strings.CutPrefix(name, submenuPrefix); ok {
		sub, ok := s.menus[target]
		if !ok {
			return nil, fmt.Errorf("%q: %w", target, ErrUnknownMenu)
		}
		return func(ctx context.Context, _ any) error {
			if runner == nil {
				return fmt.Errorf("submenu %q: %w", target, ErrNoRunner)
			}
			_, err := runner.Run(ctx, sub)
			if errors.Is(err, padmenu.ErrCancelled) {
				return nil
			}
			return err
		}, nil
	}

	hook, ok := hooks[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownHook)
	}
	return hook, nil
}

// Report describes one built menu.
type Report struct {
	Name    string
	Items   int
	Visible bool
}

// Validate reports every menu of the set and fails when one cannot be shown.
func (s *Set) Validate() ([]Report, error) {
	var (
		reports []Report
		errs    []error
	)
	for _, name := range s.order {
		m := s.menus[name]
		r := Report{Name: name, Items: padmenu.CountItems(m), Visible: padmenu.HasVisible(m.Items)}
		if !r.Visible {
			errs = append(errs, fmt.Errorf("menu %q: %w", name, padmenu.ErrNoVisibleItems))
		}
		reports = append(reports, r)
	}
	return reports, errors.Join(errs...)
}
