// Package cache implementa uma memoização simples com TTL, chaveada pelos
// parâmetros de entrada. Substitui o cache da camada de apresentação do
// dashboard: os serviços continuam determinísticos e não sabem do cache.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get retorna o valor memoizado para a chave, se ainda não expirou
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set memoiza o valor com o TTL configurado
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Remove entradas expiradas de forma oportunista para o mapa não crescer
	now := time.Now()
	for k, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, k)
		}
	}

	s.entries[key] = entry{value: value, expiresAt: now.Add(s.ttl)}
}

// Clear descarta todas as entradas (usado pelo "refresh" do dashboard)
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

// Len retorna o número de entradas, expiradas ou não
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
