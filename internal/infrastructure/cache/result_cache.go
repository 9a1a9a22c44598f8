// Package cache implementa la caché de resultados de consultas sobre un LRU con expiración.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
)

var _ analytics.ResultCache = (*ResultCache)(nil)

// ResultCache LRU acotado en tamaño y en tiempo. Seguro para uso concurrente.
// Las claves traen la versión del snapshot; el TTL solo limita la memoria retenida.
type ResultCache struct {
	lru *expirable.LRU[string, any]
}

// New crea la caché con capacidad size y vida ttl por entrada.
func New(size int, ttl time.Duration) *ResultCache {
	return &ResultCache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (c *ResultCache) Get(key string) (any, bool) { return c.lru.Get(key) }

func (c *ResultCache) Add(key string, value any) { c.lru.Add(key, value) }

// Len entradas vigentes.
func (c *ResultCache) Len() int { return c.lru.Len() }

// Purge vacía la caché.
func (c *ResultCache) Purge() { c.lru.Purge() }
