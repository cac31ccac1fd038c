package kv

import (
	"github.com/sitewalk/inspection-api/internal/i18n"
)

const languageKey = "language"

// LanguageStore persists the single locale preference.
type LanguageStore struct {
	kv *Store
}

func NewLanguageStore(kv *Store) *LanguageStore {
	return &LanguageStore{kv: kv}
}

// Load returns the stored preference; missing or invalid values fall back
// to the baseline locale.
func (l *LanguageStore) Load() (i18n.Language, error) {
	data, ok, err := l.kv.Get(languageKey)
	if err != nil {
		return i18n.DefaultLanguage, err
	}
	if !ok {
		return i18n.DefaultLanguage, nil
	}
	return i18n.Parse(string(data)), nil
}

func (l *LanguageStore) Store(lang i18n.Language) error {
	return l.kv.Set(languageKey, []byte(lang))
}
