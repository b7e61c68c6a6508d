package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"disc-match/internal/domain"
	"disc-match/internal/repository"
)

// Errores sentinela del dominio; los handlers los mapean a estados HTTP.
var (
	ErrRespondentNotFound = errors.New("respondent not found")
	ErrGenerationFailed   = errors.New("narrative generation failed")
	ErrGenerationTimeout  = errors.New("narrative generation timed out")
)

// AssessmentService coordina la evaluacion: calcula el perfil y lo persiste.
type AssessmentService struct {
	logger      *zap.Logger
	respondents repository.RespondentRepository
	labels      domain.LabelSet
}

func NewAssessmentService(logger *zap.Logger, respondents repository.RespondentRepository, labels domain.LabelSet) *AssessmentService {
	return &AssessmentService{
		logger:      logger,
		respondents: respondents,
		labels:      labels,
	}
}

// Submit califica las respuestas e inserta el resultado. Un fallo de
// persistencia es fatal para el request; no hay reintento.
func (s *AssessmentService) Submit(ctx context.Context, name string, answers []domain.Answer) (domain.Respondent, error) {
	dominant, animal, scores := ComputeProfile(answers, s.labels)

	resp, err := s.respondents.Insert(ctx, name, dominant, animal, scores)
	if err != nil {
		return domain.Respondent{}, fmt.Errorf("insert respondent: %w", err)
	}

	s.logger.Info("assessment stored",
		zap.Int64("id", resp.ID),
		zap.String("dominant_type", string(resp.DominantType)),
		zap.Int("valid_answers", scores.Total()),
		zap.Int("raw_answers", len(answers)),
	)
	return resp, nil
}

// List devuelve todos los respondents almacenados.
func (s *AssessmentService) List(ctx context.Context) ([]domain.Respondent, error) {
	return s.respondents.ListAll(ctx)
}

// Delete borra un respondent. Borrar un id inexistente devuelve
// ErrRespondentNotFound, no un exito silencioso.
func (s *AssessmentService) Delete(ctx context.Context, id int64) error {
	err := s.respondents.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrRespondentNotFound
	}
	return err
}
