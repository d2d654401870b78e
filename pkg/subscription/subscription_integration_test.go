//go:build integration

package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/testinfra"
	"foodgram/pkg/user"
)

func TestSubscriptionIntegration(t *testing.T) {
	db := testinfra.StartPostgres(t)
	ctx := context.Background()

	chef := &entities.User{Email: "chef@example.com", Username: "chef", FirstName: "A", LastName: "B", Password: "x", Role: domain.RoleUser}
	fan := &entities.User{Email: "fan@example.com", Username: "fan", FirstName: "C", LastName: "D", Password: "x", Role: domain.RoleUser}
	for _, u := range []*entities.User{chef, fan} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		r := &entities.Recipe{AuthorID: chef.ID, Name: "Dish", Text: "t", CookingTime: 10, PubDate: base.Add(time.Duration(i) * time.Hour)}
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed recipe: %v", err)
		}
	}

	repo := NewSubscriptionRepository(db)
	svc := NewSubscriptionService(repo, user.NewUserRepository(db))
	viewer := domain.Viewer{ID: fan.ID, Role: domain.RoleUser}

	res, err := svc.Subscribe(ctx, chef.ID, 2, viewer)
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if !res.IsSubscribed || res.RecipesCount != 3 || len(res.Recipes) != 2 {
		t.Errorf("Subscribe() = subscribed %v, count %d, %d previews", res.IsSubscribed, res.RecipesCount, len(res.Recipes))
	}

	if _, err := svc.Subscribe(ctx, chef.ID, 0, viewer); !errors.Is(err, domain.ErrAlreadySubscribed) {
		t.Errorf("second Subscribe() error = %v, want %v", err, domain.ErrAlreadySubscribed)
	}

	list, count, err := svc.GetSubscriptions(ctx, domain.SubscriptionFilter{
		Pagination: domain.Pagination{Page: 1, Limit: 10},
	}, viewer)
	if err != nil || count != 1 || len(list) != 1 {
		t.Fatalf("GetSubscriptions() = %d items, count %d, err %v", len(list), count, err)
	}
	if len(list[0].Recipes) != 3 {
		t.Errorf("uncapped previews = %d, want 3", len(list[0].Recipes))
	}

	// storage rejects self-subscription even when the service is bypassed
	if _, err := repo.Subscribe(ctx, fan.ID, fan.ID); err == nil {
		t.Error("self-subscription row was accepted")
	}

	if err := svc.Unsubscribe(ctx, chef.ID, viewer); err != nil {
		t.Fatalf("Unsubscribe() error = %v", err)
	}
	if err := svc.Unsubscribe(ctx, chef.ID, viewer); !errors.Is(err, domain.ErrNotSubscribed) {
		t.Errorf("second Unsubscribe() error = %v, want %v", err, domain.ErrNotSubscribed)
	}
}
