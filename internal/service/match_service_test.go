package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"disc-match/internal/domain"
	"disc-match/internal/llm"
	"disc-match/internal/repository"
)

func seedRespondent(t *testing.T, repo repository.RespondentRepository, name string, answers ...string) domain.Respondent {
	t.Helper()
	parsed := make([]domain.Answer, len(answers))
	for i, v := range answers {
		parsed[i] = domain.Answer{QuestionID: i + 1, Value: v}
	}
	dominant, animal, scores := ComputeProfile(parsed, domain.EnglishLabels)
	resp, err := repo.Insert(context.Background(), name, dominant, animal, scores)
	if err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}
	return resp
}

func TestMatchPairHappyPath(t *testing.T) {
	repo := repository.NewMemoryRespondentRepository()
	u1 := seedRespondent(t, repo, "Ana", "D", "D")
	u2 := seedRespondent(t, repo, "Luis", "S", "S", "I")

	generator := &llm.MockClient{Response: "great pairing"}
	svc := NewMatchService(zap.NewNop(), repo, generator, time.Second)

	result, err := svc.MatchPair(context.Background(), u1.ID, u2.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.User1.ID != u1.ID || result.User2.ID != u2.ID {
		t.Fatalf("respondents out of order: %d,%d", result.User1.ID, result.User2.ID)
	}
	if result.Compatibility != ResolvePairText(domain.CategoryD, domain.CategoryS) {
		t.Fatalf("unexpected compatibility text %q", result.Compatibility)
	}
	if result.AIAnalysis != "great pairing" || result.NarrativeErr != nil {
		t.Fatalf("expected narrative, got %q (err %v)", result.AIAnalysis, result.NarrativeErr)
	}
	if generator.Calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", generator.Calls)
	}
}

func TestMatchPairMissingIDSkipsGenerator(t *testing.T) {
	repo := repository.NewMemoryRespondentRepository()
	u1 := seedRespondent(t, repo, "Ana", "D")

	generator := &llm.MockClient{Response: "should not be used"}
	svc := NewMatchService(zap.NewNop(), repo, generator, time.Second)

	_, err := svc.MatchPair(context.Background(), u1.ID, 999)
	if !errors.Is(err, ErrRespondentNotFound) {
		t.Fatalf("expected ErrRespondentNotFound, got %v", err)
	}
	if generator.Calls != 0 {
		t.Fatalf("generator must not be called on missing ids, got %d calls", generator.Calls)
	}
}

func TestMatchPairDegradesOnGeneratorFailure(t *testing.T) {
	repo := repository.NewMemoryRespondentRepository()
	u1 := seedRespondent(t, repo, "Ana", "D")
	u2 := seedRespondent(t, repo, "Luis", "C")

	generator := &llm.MockClient{Err: errors.New("upstream exploded")}
	svc := NewMatchService(zap.NewNop(), repo, generator, time.Second)

	result, err := svc.MatchPair(context.Background(), u1.ID, u2.ID)
	if err != nil {
		t.Fatalf("generator failure must not fail the match, got %v", err)
	}

	// Los datos deterministas siguen presentes aunque la narrativa fallo.
	if result.Compatibility == "" {
		t.Fatalf("expected compatibility text despite narrative failure")
	}
	if !errors.Is(result.NarrativeErr, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", result.NarrativeErr)
	}
	if result.AIAnalysis != "" {
		t.Fatalf("expected empty analysis, got %q", result.AIAnalysis)
	}
}

func TestMatchPairClassifiesTimeout(t *testing.T) {
	repo := repository.NewMemoryRespondentRepository()
	u1 := seedRespondent(t, repo, "Ana", "D")
	u2 := seedRespondent(t, repo, "Luis", "I")

	generator := &llm.MockClient{Err: context.DeadlineExceeded}
	svc := NewMatchService(zap.NewNop(), repo, generator, time.Second)

	result, err := svc.MatchPair(context.Background(), u1.ID, u2.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !errors.Is(result.NarrativeErr, ErrGenerationTimeout) {
		t.Fatalf("expected ErrGenerationTimeout, got %v", result.NarrativeErr)
	}
}

func TestAnalyzeTeamEmptyStoreSkipsGenerator(t *testing.T) {
	repo := repository.NewMemoryRespondentRepository()
	generator := &llm.MockClient{Response: "should not be used"}
	svc := NewMatchService(zap.NewNop(), repo, generator, time.Second)

	analysis, err := svc.AnalyzeTeam(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if analysis.TotalMembers != 0 {
		t.Fatalf("expected 0 members, got %d", analysis.TotalMembers)
	}
	if generator.Calls != 0 {
		t.Fatalf("generator must not be called on empty team, got %d calls", generator.Calls)
	}
}

func TestAnalyzeTeamDistribution(t *testing.T) {
	repo := repository.NewMemoryRespondentRepository()
	seedRespondent(t, repo, "Ana", "D")
	seedRespondent(t, repo, "Luis", "D")
	seedRespondent(t, repo, "Mar", "S", "S")

	generator := &llm.MockClient{Response: "balanced enough"}
	svc := NewMatchService(zap.NewNop(), repo, generator, time.Second)

	analysis, err := svc.AnalyzeTeam(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if analysis.TotalMembers != 3 {
		t.Fatalf("expected 3 members, got %d", analysis.TotalMembers)
	}
	if analysis.Distribution[domain.CategoryD] != 2 || analysis.Distribution[domain.CategoryS] != 1 {
		t.Fatalf("unexpected distribution %v", analysis.Distribution)
	}
	if analysis.Distribution[domain.CategoryI] != 0 || analysis.Distribution[domain.CategoryC] != 0 {
		t.Fatalf("expected zero counts present in distribution, got %v", analysis.Distribution)
	}
	if analysis.AIAnalysis != "balanced enough" {
		t.Fatalf("unexpected narrative %q", analysis.AIAnalysis)
	}
	if generator.Calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", generator.Calls)
	}
}

func TestAnalyzeTeamDegradesOnGeneratorFailure(t *testing.T) {
	repo := repository.NewMemoryRespondentRepository()
	seedRespondent(t, repo, "Ana", "C")

	generator := &llm.MockClient{Err: errors.New("boom")}
	svc := NewMatchService(zap.NewNop(), repo, generator, time.Second)

	analysis, err := svc.AnalyzeTeam(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if analysis.Distribution[domain.CategoryC] != 1 {
		t.Fatalf("distribution must survive narrative failure, got %v", analysis.Distribution)
	}
	if !errors.Is(analysis.NarrativeErr, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", analysis.NarrativeErr)
	}
}
