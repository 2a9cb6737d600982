package service

import (
	"context"
	"sync"
)

// UserLocker serializa la generación por username: dos requests del mismo
// usuario nunca intercalan escrituras parciales de avatar/quiz. Usuarios
// distintos no se bloquean entre sí.
type UserLocker interface {
	Acquire(ctx context.Context, username string) (release func(), err error)
}

// memoryUserLocker es el lock en proceso para despliegues de una instancia.
// Las entradas llevan conteo de referencias y se podan al quedar sin uso, así
// el mapa no crece un mutex por username de por vida.
type memoryUserLocker struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewMemoryUserLocker() UserLocker {
	return &memoryUserLocker{locks: make(map[string]*userLock)}
}

func (l *memoryUserLocker) Acquire(ctx context.Context, username string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[username]
	if !ok {
		entry = &userLock{}
		l.locks[username] = entry
	}
	entry.refs++
	l.mu.Unlock()

	acquired := make(chan struct{})
	go func() {
		entry.mu.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return func() {
			entry.mu.Unlock()
			l.unref(username, entry)
		}, nil
	case <-ctx.Done():
		// El goroutine terminará tomando el lock; lo libera al llegar.
		go func() {
			<-acquired
			entry.mu.Unlock()
			l.unref(username, entry)
		}()
		return nil, ctx.Err()
	}
}

func (l *memoryUserLocker) unref(username string, entry *userLock) {
	l.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, username)
	}
	l.mu.Unlock()
}
