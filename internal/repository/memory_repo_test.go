package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"disc-match/internal/domain"
)

func testScores() domain.ScoreSet {
	return domain.ScoreSet{
		domain.CategoryD: 3,
		domain.CategoryI: 1,
		domain.CategoryS: 0,
		domain.CategoryC: 0,
	}
}

func TestMemoryRepoInsertAssignsMonotonicIDs(t *testing.T) {
	repo := NewMemoryRespondentRepository()

	first, err := repo.Insert(context.Background(), "Ana", domain.CategoryD, "Bull", testScores())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := repo.Insert(context.Background(), "Luis", domain.CategoryD, "Bull", testScores())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", first.ID, second.ID)
	}
}

func TestMemoryRepoListAndGetByIDs(t *testing.T) {
	repo := NewMemoryRespondentRepository()
	ctx := context.Background()

	a, _ := repo.Insert(ctx, "Ana", domain.CategoryD, "Bull", testScores())
	b, _ := repo.Insert(ctx, "Luis", domain.CategoryI, "Eagle", testScores())
	c, _ := repo.Insert(ctx, "Mar", domain.CategoryS, "Rat", testScores())

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 || all[1].ID != b.ID {
		t.Fatalf("unexpected listing %+v", all)
	}

	subset, err := repo.GetByIDs(ctx, []int64{a.ID, c.ID, 999})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(subset) != 2 {
		t.Fatalf("expected 2 respondents, got %d", len(subset))
	}
	if subset[0].ID != a.ID || subset[1].ID != c.ID {
		t.Fatalf("unexpected subset ids %d,%d", subset[0].ID, subset[1].ID)
	}
}

func TestMemoryRepoDelete(t *testing.T) {
	repo := NewMemoryRespondentRepository()
	ctx := context.Background()

	resp, _ := repo.Insert(ctx, "Ana", domain.CategoryD, "Bull", testScores())

	if err := repo.Delete(ctx, resp.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if err := repo.Delete(ctx, resp.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	all, _ := repo.ListAll(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d", len(all))
	}
}

func TestMemoryRepoInsertReturnsDetachedScores(t *testing.T) {
	repo := NewMemoryRespondentRepository()
	ctx := context.Background()

	scores := testScores()
	resp, _ := repo.Insert(ctx, "Ana", domain.CategoryD, "Bull", scores)

	// Mutar el mapa del caller no debe tocar lo almacenado.
	scores[domain.CategoryD] = 99
	stored, _ := repo.GetByIDs(ctx, []int64{resp.ID})
	if stored[0].Scores[domain.CategoryD] != 3 {
		t.Fatalf("stored scores aliased caller map: %v", stored[0].Scores)
	}
}

func TestMemoryRepoConcurrentInsertsUniqueIDs(t *testing.T) {
	repo := NewMemoryRespondentRepository()
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := repo.Insert(context.Background(), "worker", domain.CategoryD, "Bull", testScores())
			if err != nil {
				t.Errorf("insert failed: %v", err)
				return
			}
			ids <- resp.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d under concurrent inserts", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}
