// Package sessionstore хранит живые сессии процесса бронирования.
//
// Сессии эфемерны и живут в памяти процесса: брошенная сессия не держит
// никаких ресурсов и просто удаляется janitor'ом по таймауту простоя.
// Межпроцессная синхронизация сессий сознательно не предоставляется —
// авторитетная проверка слота происходит в сериализуемой транзакции
// при подтверждении.
package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/workflow"
)

// Store потокобезопасное in-memory хранилище сессий
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*workflow.Session
}

// NewMemory создает пустое хранилище
func NewMemory() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*workflow.Session),
	}
}

// Create регистрирует новую сессию
func (s *Store) Create(ctx context.Context, sess *workflow.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; ok {
		return ErrSessionExists
	}

	s.sessions[sess.ID] = sess
	return nil
}

// Get возвращает снапшот сессии.
// Возвращается копия: изменять состояние можно только через Update.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*workflow.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	snapshot := *sess
	return &snapshot, nil
}

// Update применяет fn к сессии под блокировкой хранилища.
// Переход состояния внутри fn атомарен относительно других вызовов
// Update для той же сессии: это и есть guard от двойного подтверждения
// при параллельных запросах.
func (s *Store) Update(ctx context.Context, id uuid.UUID, fn func(sess *workflow.Session) error) (*workflow.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := fn(sess); err != nil {
		return nil, err
	}

	snapshot := *sess
	return &snapshot, nil
}

// Delete удаляет сессию. Удаление отсутствующей сессии не ошибка.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len возвращает количество живых сессий
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// StartJanitor запускает фоновую чистку сессий, простаивающих дольше
// maxIdle. Закрытие stopCh останавливает чистку.
func (s *Store) StartJanitor(interval, maxIdle time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case now := <-ticker.C:
				s.sweep(now, maxIdle)
			}
		}
	}()
}

func (s *Store) sweep(now time.Time, maxIdle time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if now.Sub(sess.UpdatedAt) > maxIdle {
			delete(s.sessions, id)
		}
	}
}
