package usecase

import (
	"context"
	"sync"
)

// RouteGuard следит за поколениями запросов маршрута в рамках сессии.
// Новый Begin для той же сессии отменяет контекст предыдущего запроса,
// а Commit не даёт устаревшему результату выдать себя за актуальный.
type RouteGuard struct {
	mu       sync.Mutex
	next     uint64
	sessions map[string]*guardEntry
}

type guardEntry struct {
	gen    uint64
	cancel context.CancelFunc
}

// NewRouteGuard создаёт пустой guard
func NewRouteGuard() *RouteGuard {
	return &RouteGuard{
		sessions: make(map[string]*guardEntry),
	}
}

// Begin начинает новое поколение для key и отменяет предыдущее.
// Токены монотонны для всех ключей, поэтому не повторяются
// даже после того, как запись сессии удалена в Done.
func (g *RouteGuard) Begin(parent context.Context, key string) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.sessions[key]; ok {
		prev.cancel()
	}
	g.next++
	g.sessions[key] = &guardEntry{gen: g.next, cancel: cancel}
	return ctx, g.next
}

// Commit сообщает, является ли gen всё ещё текущим поколением key
func (g *RouteGuard) Commit(key string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.sessions[key]
	return ok && e.gen == gen
}

// Done освобождает ресурсы поколения. Для устаревшего поколения
// контекст уже отменён в Begin, запись сессии не трогается.
func (g *RouteGuard) Done(key string, gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.sessions[key]
	if !ok || e.gen != gen {
		return
	}
	e.cancel()
	delete(g.sessions, key)
}

// Active - количество сессий с запросом в работе
func (g *RouteGuard) Active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}
