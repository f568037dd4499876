package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsroom-api/internal/domain/entity"
	"newsroom-api/internal/domain/repository"
)

func newArticleService() (*ArticleService, *fakeArticleRepo) {
	repo := &fakeArticleRepo{}
	return NewArticleService(repo, nil), repo
}

func TestCreateArticle_DefaultsToDraft(t *testing.T) {
	svc, _ := newArticleService()
	a, err := svc.Create(context.Background(), repository.ArticleFields{
		Title:       "t",
		Category:    "c",
		Description: "d",
		ImageURL:    "http://img",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != entity.StatusDraft {
		t.Errorf("expected status draft, got %q", a.Status)
	}
	if a.ID.IsZero() {
		t.Error("expected a generated id")
	}
}

func TestCreateArticle_KeepsExplicitStatus(t *testing.T) {
	svc, _ := newArticleService()
	a, err := svc.Create(context.Background(), repository.ArticleFields{
		Title:       "t",
		Category:    "c",
		Status:      entity.StatusPublished,
		Description: "d",
		ImageURL:    "http://img",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != entity.StatusPublished {
		t.Errorf("expected status published, got %q", a.Status)
	}
}

func TestCreateArticle_TimestampPerCall(t *testing.T) {
	svc, _ := newArticleService()
	a, err := svc.Create(context.Background(), repository.ArticleFields{
		Title: "t", Category: "c", Description: "d", ImageURL: "u",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created, err := time.ParseInLocation(createdAtLayout, a.CreatedAt, time.Local)
	if err != nil {
		t.Fatalf("createdAt %q does not match layout: %v", a.CreatedAt, err)
	}
	if d := time.Since(created); d < 0 || d > time.Minute {
		t.Errorf("createdAt should be captured at call time, got %v (%v ago)", a.CreatedAt, d)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	svc, _ := newArticleService()
	if _, err := svc.Get(context.Background(), "6610f0d1e3a1b2c3d4e5f601"); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
	// malformed id behaves like an unknown one
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound for malformed id, got %v", err)
	}
}

func TestUpdateArticle_ReplacesAllFields(t *testing.T) {
	svc, _ := newArticleService()
	a, err := svc.Create(context.Background(), repository.ArticleFields{
		Title: "old", Category: "oldcat", Status: entity.StatusDraft, Description: "olddesc", ImageURL: "oldurl",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	upd, err := svc.Update(context.Background(), a.ID.Hex(), repository.ArticleFields{
		Title: "new", Category: "newcat", Status: entity.StatusPublished, Description: "newdesc", ImageURL: "newurl",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Title != "new" || upd.Category != "newcat" || upd.Status != entity.StatusPublished ||
		upd.Description != "newdesc" || upd.ImageURL != "newurl" {
		t.Errorf("update mixed old and new values: %+v", upd)
	}
	if upd.CreatedAt != a.CreatedAt {
		t.Errorf("update must not touch createdAt: %q vs %q", upd.CreatedAt, a.CreatedAt)
	}
}

func TestDeleteArticle_NotFound(t *testing.T) {
	svc, _ := newArticleService()
	if err := svc.Delete(context.Background(), "6610f0d1e3a1b2c3d4e5f601"); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}
