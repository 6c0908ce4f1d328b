package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/axia-erp/internal/application/usecase"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) Delete(id string) error      { delete(r.users, id); return nil }
func (r *memUserRepo) List(tenantFilter string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if tenantFilter == "" || u.TenantID == tenantFilter {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUserRepo) SearchByNameOrRole(string, string, string) ([]*entity.User, error) {
	return nil, nil
}
func (r *memUserRepo) ListPublic(limit int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if len(out) == limit {
			break
		}
		out = append(out, u)
	}
	return out, nil
}
func (r *memUserRepo) Count() (int, error) { return len(r.users), nil }

func TestPerfilPublicoPorID(t *testing.T) {
	repo := newMemUserRepo()
	repo.users["u-1"] = &entity.User{
		ID:           "u-1",
		TenantID:     "empresa-a",
		Name:         "Laura Mejía",
		Email:        "laura@empresa-a.co",
		Role:         entity.RoleEditor,
		PasswordHash: "$2a$10$secreto",
	}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.GetPublic("u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", out.ID)
	assert.Equal(t, "Laura Mejía", out.Name)
	assert.Equal(t, entity.RoleEditor, out.Role)
}

func TestPerfilPublicoInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo())
	_, err := uc.GetPublic("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
