package translate

import "context"

// StaticTranslator serves translations from an in-memory table. It is handy
// for small embedded catalogs and as a lightweight delegate in tests.
type StaticTranslator struct {
	messages map[string]string
}

// NewStaticTranslator copies messages into a new translator. A zero-length
// table is valid; every lookup then reports a missing key.
func NewStaticTranslator(messages map[string]string) *StaticTranslator {
	table := make(map[string]string, len(messages))
	for key, value := range messages {
		table[key] = value
	}
	return &StaticTranslator{messages: table}
}

func (t *StaticTranslator) Get(_ context.Context, key string) (string, error) {
	value, ok := t.messages[key]
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}
	return value, nil
}
