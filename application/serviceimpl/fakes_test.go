package serviceimpl

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasks-api/domain/models"
	"tasks-api/domain/ports"
	"tasks-api/domain/repositories"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeTaskRepo struct {
	mu      sync.Mutex
	tasks   map[uuid.UUID]*models.Task
	deleted map[uuid.UUID]time.Time

	countByPriorityCalls int
	purgeCutoff          time.Time
	purgeErr             error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		tasks:   make(map[uuid.UUID]*models.Task),
		deleted: make(map[uuid.UUID]time.Time),
	}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id, ownerID uuid.UUID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, repositories.ErrNotFound
	}
	cp := *task
	return &cp, nil
}

func (r *fakeTaskRepo) matches(task *models.Task, ownerID uuid.UUID, filter repositories.TaskFilter) bool {
	if task.UserID != ownerID {
		return false
	}
	if filter.Priority != "" && task.Priority != filter.Priority {
		return false
	}
	if filter.Query != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(filter.Query)) {
		return false
	}
	return true
}

func (r *fakeTaskRepo) List(_ context.Context, ownerID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*models.Task
	for _, task := range r.tasks {
		if r.matches(task, ownerID, filter) {
			cp := *task
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Offset >= len(result) {
		return nil, nil
	}
	result = result[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *fakeTaskRepo) Count(_ context.Context, ownerID uuid.UUID, filter repositories.TaskFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, task := range r.tasks {
		if r.matches(task, ownerID, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return repositories.ErrNotFound
	}
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != ownerID {
		return repositories.ErrNotFound
	}
	delete(r.tasks, id)
	r.deleted[id] = time.Now()
	return nil
}

func (r *fakeTaskRepo) CountByPriority(_ context.Context, ownerID uuid.UUID) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countByPriorityCalls++

	counts := make(map[string]int64)
	for _, task := range r.tasks {
		if task.UserID == ownerID {
			counts[task.Priority]++
		}
	}
	return counts, nil
}

func (r *fakeTaskRepo) PurgeDeleted(_ context.Context, olderThan time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeCutoff = olderThan
	if r.purgeErr != nil {
		return 0, r.purgeErr
	}

	var purged int64
	for id, deletedAt := range r.deleted {
		if deletedAt.Before(olderThan) {
			delete(r.deleted, id)
			purged++
		}
	}
	return purged, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, target any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return ports.ErrCacheMiss
	}
	return json.Unmarshal(raw, target)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}
