// Package caching keeps short-lived results of external calls in memory.
package caching

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultExpiration = 6 * time.Hour
	cleanupInterval   = 30 * time.Minute
)

type Cache struct {
	memoryCache *cache.Cache
}

func NewCache() *Cache {
	return &Cache{}
}

func (s *Cache) Init() error {
	s.memoryCache = cache.New(DefaultExpiration, cleanupInterval)
	return nil
}

// Flush drops every entry and detaches the store. The cache is a no-op afterwards.
func (s *Cache) Flush() error {
	if s.memoryCache != nil {
		s.memoryCache.Flush()
		s.memoryCache = nil
	}
	return nil
}

// Clear drops every entry but keeps the cache usable.
func (s *Cache) Clear() {
	if s.memoryCache != nil {
		s.memoryCache.Flush()
	}
}

func translationKey(lang, text string) string {
	return lang + "\x00" + text
}

// GetTranslation returns a cached translation of text into lang.
func (s *Cache) GetTranslation(lang, text string) (string, bool) {
	if s.memoryCache == nil {
		return "", false
	}
	v, ok := s.memoryCache.Get(translationKey(lang, text))
	if !ok {
		return "", false
	}
	translated, ok := v.(string)
	return translated, ok
}

func (s *Cache) SetTranslation(lang, text, translated string) {
	if s.memoryCache == nil {
		return
	}
	s.memoryCache.Set(translationKey(lang, text), translated, cache.DefaultExpiration)
}

func (s *Cache) ItemCount() int {
	if s.memoryCache == nil {
		return 0
	}
	return s.memoryCache.ItemCount()
}
