package vacsrvc

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type InMemVacancyRepo struct {
	lock      sync.Mutex
	vacancies map[uuid.UUID]Vacancy
}

func NewInMemVacancyRepo() *InMemVacancyRepo {
	return &InMemVacancyRepo{vacancies: make(map[uuid.UUID]Vacancy)}
}

func (m *InMemVacancyRepo) Get(ctx context.Context, id uuid.UUID) (*Vacancy, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	v, ok := m.vacancies[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m *InMemVacancyRepo) List(ctx context.Context, limit int, offset int, orderBy string) ([]Vacancy, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	all := make([]Vacancy, 0, len(m.vacancies))
	for _, v := range m.vacancies {
		all = append(all, v)
	}
	if orderBy == "title" {
		sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })
	} else {
		sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *InMemVacancyRepo) Create(ctx context.Context, v Vacancy) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.vacancies[v.ID] = v
	return nil
}

func (m *InMemVacancyRepo) Update(ctx context.Context, v Vacancy) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.vacancies[v.ID] = v
	return nil
}

func (m *InMemVacancyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.vacancies, id)
	return nil
}

type InMemVacancyFileRepo struct {
	lock  sync.Mutex
	files map[uuid.UUID]VacancyFile
}

func NewInMemVacancyFileRepo() *InMemVacancyFileRepo {
	return &InMemVacancyFileRepo{files: make(map[uuid.UUID]VacancyFile)}
}

func (m *InMemVacancyFileRepo) Get(ctx context.Context, id uuid.UUID) (*VacancyFile, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	f, ok := m.files[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (m *InMemVacancyFileRepo) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]VacancyFile, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	var files []VacancyFile
	for _, f := range m.files {
		if f.VacancyID == vacancyID {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].CreatedAt.Before(files[j].CreatedAt) })
	return files, nil
}

func (m *InMemVacancyFileRepo) Create(ctx context.Context, f VacancyFile) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.files[f.ID] = f
	return nil
}

func (m *InMemVacancyFileRepo) Update(ctx context.Context, f VacancyFile) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.files[f.ID] = f
	return nil
}
