package i18n

import (
	"embed"
	"encoding/json"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var bundledLocales embed.FS

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := bundledLocales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		content, err := bundledLocales.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(content, entry.Name()); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// InitI18N builds the bundle from the embedded translations plus any extra
// message files on disk, and selects the given language.
func InitI18N(lang string, messageFilePaths ...string) error {
	bundle, err := newBundle()
	if err != nil {
		return err
	}

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return err
		}
	}

	return install(bundle, lang)
}

func InitI18NFromBytes(lang string, messageFiles []MessageFile) error {
	bundle, err := newBundle()
	if err != nil {
		return err
	}

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}

	return install(bundle, lang)
}

func install(bundle *i18n.Bundle, lang string) error {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return err
		}
		tag = parsed
	}

	mu.Lock()
	i = &I18N{localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()), bundle: bundle}
	mu.Unlock()
	return nil
}

func current() *I18N {
	mu.RLock()
	cur := i
	mu.RUnlock()
	if cur != nil {
		return cur
	}

	if err := InitI18N(""); err != nil {
		bundle := i18n.NewBundle(language.English)
		mu.Lock()
		i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}
		mu.Unlock()
	}

	mu.RLock()
	defer mu.RUnlock()
	return i
}

func SetLanguage(lang language.Tag) {
	cur := current()
	mu.Lock()
	i = &I18N{localizer: i18n.NewLocalizer(cur.bundle, lang.String(), language.English.String()), bundle: cur.bundle}
	mu.Unlock()
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// Localize renders message in the current language, falling back to the
// message's own English text.
//
//	i18n.Localize(&i18n.Message{
//	    ID:    "welcome_user",
//	    Other: "Welcome, {{.Name}}!",
//	}, map[string]interface{}{"Name": "Alice"})
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := current().localizer.Localize(config)
	if msg != "" {
		return msg
	}
	if err != nil && message.Other != "" {
		return message.Other
	}
	return msg
}

// LocalizePlural is Localize with a plural count selecting One/Other forms.
func LocalizePlural(message *Message, count int, templateData map[string]interface{}) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
		PluralCount:    count,
	}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := current().localizer.Localize(config)
	if msg != "" {
		return msg
	}
	if err != nil && message.Other != "" {
		return message.Other
	}
	return msg
}
