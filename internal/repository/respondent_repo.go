package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"disc-match/internal/domain"
)

// ErrNotFound indica que ningun respondent tiene el id pedido.
var ErrNotFound = errors.New("respondent not found")

// RespondentRepository define el contrato de persistencia para resultados de
// evaluacion. No hay operacion de update: un respondent es inmutable despues
// del insert y solo puede borrarse.
type RespondentRepository interface {
	Insert(ctx context.Context, name string, dominant domain.Category, animal string, scores domain.ScoreSet) (domain.Respondent, error)
	ListAll(ctx context.Context) ([]domain.Respondent, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Respondent, error)
	Delete(ctx context.Context, id int64) error
}

// PgRespondentRepository implementa RespondentRepository usando pgxpool.
// Es el modo durable: los ids salen del BIGSERIAL, asi que inserts
// concurrentes nunca colisionan, y los datos sobreviven reinicios.
type PgRespondentRepository struct {
	pool *pgxpool.Pool
}

func NewPgRespondentRepository(pool *pgxpool.Pool) *PgRespondentRepository {
	return &PgRespondentRepository{pool: pool}
}

func (r *PgRespondentRepository) Insert(ctx context.Context, name string, dominant domain.Category, animal string, scores domain.ScoreSet) (domain.Respondent, error) {
	const query = `
		INSERT INTO respondents (name, dominant_type, animal, score_d, score_i, score_s, score_c)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	resp := domain.Respondent{
		Name:         name,
		DominantType: dominant,
		Animal:       animal,
		Scores:       scores,
	}
	err := r.pool.QueryRow(ctx, query,
		name,
		string(dominant),
		animal,
		scores[domain.CategoryD],
		scores[domain.CategoryI],
		scores[domain.CategoryS],
		scores[domain.CategoryC],
	).Scan(&resp.ID)
	if err != nil {
		return domain.Respondent{}, err
	}
	return resp, nil
}

func (r *PgRespondentRepository) ListAll(ctx context.Context) ([]domain.Respondent, error) {
	const query = `
		SELECT id, name, dominant_type, animal, score_d, score_i, score_s, score_c
		FROM respondents
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRespondents(rows)
}

func (r *PgRespondentRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Respondent, error) {
	const query = `
		SELECT id, name, dominant_type, animal, score_d, score_i, score_s, score_c
		FROM respondents
		WHERE id = ANY($1)
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRespondents(rows)
}

func (r *PgRespondentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM respondents WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRespondents(rows pgx.Rows) ([]domain.Respondent, error) {
	respondents := []domain.Respondent{}
	for rows.Next() {
		var (
			resp       domain.Respondent
			dominant   string
			d, i, s, c int
		)
		if err := rows.Scan(&resp.ID, &resp.Name, &dominant, &resp.Animal, &d, &i, &s, &c); err != nil {
			return nil, err
		}
		resp.DominantType = domain.Category(dominant)
		resp.Scores = domain.ScoreSet{
			domain.CategoryD: d,
			domain.CategoryI: i,
			domain.CategoryS: s,
			domain.CategoryC: c,
		}
		respondents = append(respondents, resp)
	}
	return respondents, rows.Err()
}
