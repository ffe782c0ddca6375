package services

import (
	"context"
	"fmt"
	"time"
)

// fakeSlot is an in-memory stand-in for the Redis-backed durable slot.
type fakeSlot struct {
	entries map[string]string
}

func newFakeSlot() *fakeSlot {
	return &fakeSlot{entries: make(map[string]string)}
}

func (f *fakeSlot) Get(ctx context.Context, key string) (string, error) {
	return f.entries[key], nil
}

func (f *fakeSlot) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.entries[key] = string(v)
	case string:
		f.entries[key] = v
	default:
		f.entries[key] = fmt.Sprint(v)
	}
	return nil
}

func (f *fakeSlot) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}
