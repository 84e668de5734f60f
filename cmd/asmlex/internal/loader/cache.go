package loader

import "errors"

var errCacheAlreadyHas = errors.New("attempt to overwrite cache")

type memoryCache struct {
	sources map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		sources: make(map[string][]byte),
	}
}

func (mc *memoryCache) Fetch(path string) ([]byte, bool) {
	data, has := mc.sources[path]
	return data, has
}

func (mc *memoryCache) Store(path string, data []byte) error {
	if _, has := mc.sources[path]; has {
		return errCacheAlreadyHas
	}
	mc.sources[path] = data
	return nil
}
