// Package i18n resolves menu labels through go-i18n message files. A label that
// has no translation resolves to itself, so literal titles pass through.
package i18n

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu sync.RWMutex
	i  *Resolver
)

// Resolver is a LabelResolver backed by a go-i18n bundle.
type Resolver struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

// Built in menu bar messages, overridable by message files.
var defaultMessages = []*i18n.Message{
	{ID: "menu.ok", Other: "OK"},
	{ID: "menu.select", Other: "SEL"},
	{ID: "menu.back", Other: "BACK"},
	{ID: "menu.up", Other: "↑"},
	{ID: "menu.down", Other: "↓"},
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if err := bundle.AddMessages(language.English, defaultMessages...); err != nil {
		panic("invalid built in messages: " + err.Error())
	}
	return bundle
}

// NewResolver loads message files from disk. Languages are tried in order.
func NewResolver(messageFilePaths []string, langs ...string) (*Resolver, error) {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return nil, err
		}
	}

	return &Resolver{localizer: i18n.NewLocalizer(bundle, withDefault(langs)...), bundle: bundle}, nil
}

func withDefault(langs []string) []string {
	return append(append([]string{}, langs...), language.English.String())
}

// WithLanguage returns a resolver over the same messages for another language.
func (r *Resolver) WithLanguage(lang language.Tag) *Resolver {
	return &Resolver{localizer: i18n.NewLocalizer(r.bundle, lang.String(), language.English.String()), bundle: r.bundle}
}

// Resolve returns the localized text of label, or label itself when there is no
// message with that ID.
func (r *Resolver) Resolve(label string) string {
	if r == nil || label == "" {
		return label
	}
	msg, err := r.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: label,
	})
	if err != nil {
		return label
	}
	return msg
}

// InitI18N loads message files into the resolver returned by Default.
func InitI18N(messageFilePaths []string, langs ...string) error {
	r, err := NewResolver(messageFilePaths, langs...)
	if err != nil {
		return err
	}
	setDefault(r)
	return nil
}

func setDefault(r *Resolver) {
	mu.Lock()
	i = r
	mu.Unlock()
}

// Default returns the resolver set up by InitI18N, or nil.
func Default() *Resolver {
	mu.RLock()
	defer mu.RUnlock()
	return i
}

func SetLanguage(lang language.Tag) {
	mu.Lock()
	defer mu.Unlock()
	if i != nil {
		i = i.WithLanguage(lang)
	}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// GetString resolves key with the default resolver. It follows SetLanguage, so
// it can be handed to an engine as its label resolver.
func GetString(key string) string {
	return Default().Resolve(key)
}
