package memory

import (
	"context"
	"sort"

	"jotdown/internal/domain/models"
)

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.assignID()
	s.users[user.ID] = *user
	return nil
}

func (r *userRepo) ListAll(ctx context.Context) ([]models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
