package review

import (
	"github.com/google/uuid"

	"github.com/riskframe/secreview-backend/internal/domain"
)

// keyMap is the in-memory correspondence table between submission-scoped
// logical keys and newly minted production ids. A draft item registers under
// its explicit id and under its normalized text, so references by either form
// resolve. First registration wins; a later draft never steals a key.
type keyMap struct {
	ids map[string]uuid.UUID
}

func newKeyMap() *keyMap {
	return &keyMap{ids: make(map[string]uuid.UUID)}
}

// register binds the keys (explicit id first, normalized text second) to a
// production id. Empty keys are ignored.
func (k *keyMap) register(id uuid.UUID, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, taken := k.ids[key]; taken {
			continue
		}
		k.ids[key] = id
	}
}

// resolve looks up a reference: exact match first, then its normalized form.
func (k *keyMap) resolve(ref string) (uuid.UUID, bool) {
	if ref == "" {
		return uuid.Nil, false
	}
	if id, ok := k.ids[ref]; ok {
		return id, true
	}
	if id, ok := k.ids[domain.NormalizeText(ref)]; ok {
		return id, true
	}
	return uuid.Nil, false
}
