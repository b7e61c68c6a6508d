package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"disc-match/internal/domain"
	"disc-match/internal/llm"
	"disc-match/internal/repository"
)

// EmptyTeamMessage es la respuesta fija cuando no hay nadie en el store; en
// ese caso el generador no se invoca nunca.
const EmptyTeamMessage = "no team members yet — submit an assessment first"

// MatchService orquesta los analisis de pareja y de equipo. Los datos
// deterministas (texto de compatibilidad, distribucion) se calculan local;
// el LLM solo agrega narrativa y su fallo degrada la respuesta, no la rompe.
type MatchService struct {
	logger      *zap.Logger
	respondents repository.RespondentRepository
	generator   llm.Client
	genTimeout  time.Duration
}

func NewMatchService(logger *zap.Logger, respondents repository.RespondentRepository, generator llm.Client, genTimeout time.Duration) *MatchService {
	if genTimeout <= 0 {
		genTimeout = 30 * time.Second
	}
	return &MatchService{
		logger:      logger,
		respondents: respondents,
		generator:   generator,
		genTimeout:  genTimeout,
	}
}

// MatchResult es el analisis de una pareja. AIAnalysis queda vacio y
// NarrativeErr distinto de nil cuando el generador fallo; la compatibilidad
// determinista siempre esta presente.
type MatchResult struct {
	User1         domain.Respondent
	User2         domain.Respondent
	Compatibility string
	AIAnalysis    string
	NarrativeErr  error
}

// TeamAnalysis es el analisis del equipo completo. Distribution cuenta
// respondents por tipo dominante.
type TeamAnalysis struct {
	TotalMembers int
	Distribution domain.ScoreSet
	AIAnalysis   string
	NarrativeErr error
}

// MatchPair busca exactamente dos respondents y analiza su compatibilidad.
// Si falta alguno de los ids devuelve ErrRespondentNotFound sin tocar el
// generador. El lookup se completa antes de la llamada de red, asi que no se
// retiene nada del store mientras el LLM responde.
func (s *MatchService) MatchPair(ctx context.Context, id1, id2 int64) (MatchResult, error) {
	found, err := s.respondents.GetByIDs(ctx, []int64{id1, id2})
	if err != nil {
		return MatchResult{}, fmt.Errorf("get respondents: %w", err)
	}
	if len(found) != 2 {
		return MatchResult{}, ErrRespondentNotFound
	}

	u1, u2 := found[0], found[1]
	if u1.ID != id1 {
		u1, u2 = u2, u1
	}

	result := MatchResult{
		User1:         u1,
		User2:         u2,
		Compatibility: ResolvePairText(u1.DominantType, u2.DominantType),
	}

	prompt := fmt.Sprintf(pairAnalysisPromptTemplate,
		u1.Name, u1.DominantType, u1.Animal,
		u1.Scores[domain.CategoryD], u1.Scores[domain.CategoryI], u1.Scores[domain.CategoryS], u1.Scores[domain.CategoryC],
		u2.Name, u2.DominantType, u2.Animal,
		u2.Scores[domain.CategoryD], u2.Scores[domain.CategoryI], u2.Scores[domain.CategoryS], u2.Scores[domain.CategoryC],
		result.Compatibility,
	)

	result.AIAnalysis, result.NarrativeErr = s.generate(ctx, prompt)
	return result, nil
}

// AnalyzeTeam calcula la distribucion de tipos y pide la narrativa de equipo.
// Con el store vacio devuelve TotalMembers=0 sin invocar el generador; el
// handler responde el mensaje fijo.
func (s *MatchService) AnalyzeTeam(ctx context.Context) (TeamAnalysis, error) {
	members, err := s.respondents.ListAll(ctx)
	if err != nil {
		return TeamAnalysis{}, fmt.Errorf("list respondents: %w", err)
	}

	analysis := TeamAnalysis{
		TotalMembers: len(members),
		Distribution: domain.NewScoreSet(),
	}
	if len(members) == 0 {
		return analysis, nil
	}

	var roster strings.Builder
	for _, m := range members {
		analysis.Distribution[m.DominantType]++
		fmt.Fprintf(&roster, "- %s: %s (%s)\n", m.Name, m.DominantType, m.Animal)
	}

	prompt := fmt.Sprintf(teamAnalysisPromptTemplate,
		len(members),
		analysis.Distribution[domain.CategoryD],
		analysis.Distribution[domain.CategoryI],
		analysis.Distribution[domain.CategoryS],
		analysis.Distribution[domain.CategoryC],
		roster.String(),
	)

	analysis.AIAnalysis, analysis.NarrativeErr = s.generate(ctx, prompt)
	return analysis, nil
}

// generate hace un unico intento contra el LLM con timeout acotado. Un
// timeout se reporta distinto de cualquier otro fallo upstream.
func (s *MatchService) generate(ctx context.Context, prompt string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	text, err := s.generator.Generate(genCtx, prompt)
	if err == nil {
		return text, nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		s.logger.Warn("narrative generation timed out", zap.Duration("timeout", s.genTimeout))
		return "", ErrGenerationTimeout
	}
	s.logger.Warn("narrative generation failed", zap.Error(err))
	return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
}
