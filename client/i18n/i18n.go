// Package i18n holds the display-language state and the key-lookup
// translation function with English fallback.
package i18n

import "sync"

const (
	English = "en"
	Hindi   = "hi"
)

type Translator struct {
	mu   sync.RWMutex
	lang string
}

func New() *Translator {
	return &Translator{lang: English}
}

func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Set switches the active language. Unknown codes fall back to English.
func (t *Translator) Set(lang string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if lang != English && lang != Hindi {
		lang = English
	}
	t.lang = lang
}

// Toggle flips between English and Hindi.
func (t *Translator) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lang == English {
		t.lang = Hindi
	} else {
		t.lang = English
	}
}

// T looks up a dotted key ("booking.errors.nameRequired") in the active
// language, falling back to English, then to the key itself.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()

	if msgs, ok := translations[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := translations[English][key]; ok {
		return msg
	}
	return key
}
