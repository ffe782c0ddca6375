package repositories

import (
	"fmt"
	"sort"
	"strings"

	"MediBuddy/models"
)

// UserRepository is the read-only user directory. It is seeded once at
// process start and never mutated afterwards, so lookups need no locking.
type UserRepository interface {
	GetByID(id string) (*models.User, bool)
	GetByEmail(email string) (*models.User, bool)
	// FindByCredentials is an exact match on all three fields.
	FindByCredentials(email, password string, role models.Role) (*models.User, bool)
	ListByRole(role models.Role) []models.User
	// SearchDoctors filters doctors by a case-insensitive token over name
	// and specialty. An empty term returns all doctors.
	SearchDoctors(term string) []models.User
}

type userRepository struct {
	byID    map[string]models.User
	byEmail map[string]models.User
	ordered []models.User
}

// NewUserRepository builds the directory from the seed set, enforcing the
// role/profile pairing on every entry.
func NewUserRepository(users []models.User) (UserRepository, error) {
	r := &userRepository{
		byID:    make(map[string]models.User, len(users)),
		byEmail: make(map[string]models.User, len(users)),
		ordered: make([]models.User, 0, len(users)),
	}
	for i := range users {
		u := users[i]
		if err := u.CheckProfile(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[u.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %q in seed data", u.ID)
		}
		if _, dup := r.byEmail[u.Email]; dup {
			return nil, fmt.Errorf("duplicate user email %q in seed data", u.Email)
		}
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
		r.ordered = append(r.ordered, u)
	}
	return r, nil
}

func (r *userRepository) GetByID(id string) (*models.User, bool) {
	u, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (r *userRepository) GetByEmail(email string) (*models.User, bool) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (r *userRepository) FindByCredentials(email, password string, role models.Role) (*models.User, bool) {
	u, ok := r.byEmail[email]
	if !ok || u.Password != password || u.Role != role {
		return nil, false
	}
	return &u, true
}

func (r *userRepository) ListByRole(role models.Role) []models.User {
	var out []models.User
	for _, u := range r.ordered {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

func (r *userRepository) SearchDoctors(term string) []models.User {
	doctors := r.ListByRole(models.RoleDoctor)
	if term == "" {
		return doctors
	}
	needle := strings.ToLower(term)
	var out []models.User
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), needle) ||
			(d.Doctor != nil && strings.Contains(strings.ToLower(d.Doctor.Specialty), needle)) {
			out = append(out, d)
		}
	}
	return out
}

// MaterializeByID resolves a set of user ids against the directory,
// skipping ids with no directory entry, ordered by id for stable output.
func MaterializeByID(dir UserRepository, ids map[string]struct{}) []models.User {
	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	out := make([]models.User, 0, len(ordered))
	for _, id := range ordered {
		if u, ok := dir.GetByID(id); ok {
			out = append(out, *u)
		}
	}
	return out
}
