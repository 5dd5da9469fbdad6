package hellobutton

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	greetingMessage = &i18n.Message{ID: "Greeting", Other: "Hello world!"}
	clickedMessage  = &i18n.Message{ID: "Clicked", Other: "clicked: {{.Count}}"}
)

// Messages renders the label texts in one locale. English is the fallback.
type Messages struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewMessages loads the embedded locale files and selects locale.
// A locale without a translation falls back to English.
func NewMessages(locale string) (*Messages, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
	}

	return &Messages{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// Tag returns the requested locale.
func (m *Messages) Tag() language.Tag {
	return m.tag
}

// Greeting is the label text before any click.
func (m *Messages) Greeting() string {
	return m.localize(greetingMessage, nil, "Hello world!")
}

// Clicked is the label text after n clicks.
func (m *Messages) Clicked(n uint8) string {
	return m.localize(clickedMessage, map[string]any{"Count": n}, fmt.Sprintf("clicked: %d", n))
}

func (m *Messages) localize(msg *i18n.Message, data map[string]any, fallback string) string {
	s, err := m.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil && s == "" {
		GetLogger().Warn("Failed to localize message", "id", msg.ID, "locale", m.tag.String(), "error", err)
		return fallback
	}
	return s
}
