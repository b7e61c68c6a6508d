package repository

import (
	"context"
	"sync"

	"disc-match/internal/domain"
)

// MemoryRespondentRepository implementa RespondentRepository en memoria.
// Es la etapa temprana del sistema, conservada como modo de despliegue para
// desarrollo: los ids siguen siendo unicos y monotonicos bajo concurrencia
// (mutex + contador), pero todo se pierde al reiniciar el proceso.
type MemoryRespondentRepository struct {
	mu          sync.Mutex
	nextID      int64
	respondents []domain.Respondent
}

func NewMemoryRespondentRepository() *MemoryRespondentRepository {
	return &MemoryRespondentRepository{nextID: 1}
}

func (r *MemoryRespondentRepository) Insert(_ context.Context, name string, dominant domain.Category, animal string, scores domain.ScoreSet) (domain.Respondent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resp := domain.Respondent{
		ID:           r.nextID,
		Name:         name,
		DominantType: dominant,
		Animal:       animal,
		Scores:       cloneScores(scores),
	}
	r.nextID++
	r.respondents = append(r.respondents, resp)
	return resp, nil
}

func (r *MemoryRespondentRepository) ListAll(_ context.Context) ([]domain.Respondent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Respondent, len(r.respondents))
	copy(out, r.respondents)
	return out, nil
}

func (r *MemoryRespondentRepository) GetByIDs(_ context.Context, ids []int64) ([]domain.Respondent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := []domain.Respondent{}
	for _, resp := range r.respondents {
		if wanted[resp.ID] {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (r *MemoryRespondentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, resp := range r.respondents {
		if resp.ID == id {
			r.respondents = append(r.respondents[:i], r.respondents[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func cloneScores(scores domain.ScoreSet) domain.ScoreSet {
	out := make(domain.ScoreSet, len(scores))
	for c, n := range scores {
		out[c] = n
	}
	return out
}
