package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsroom-api/config"
	"newsroom-api/internal/domain/entity"
	"newsroom-api/internal/infrastructure/mongodb"
	"newsroom-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoMaxPool)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDB)

	if err := mongodb.EnsureIndexes(ctx, db, cfg.UsersColl); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	email := "editor@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := db.Collection(cfg.UsersColl)
	res, err := users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$setOnInsert": entity.User{
			FirstName: "Demo",
			LastName:  "Editor",
			Email:     email,
			Password:  hash,
			Role:      true,
			CreatedAt: time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	if res.UpsertedCount > 0 {
		fmt.Printf("seeded user: email=%s password=%s\n", email, password)
	} else {
		fmt.Printf("user already present: email=%s\n", email)
	}

	articles := db.Collection(cfg.ArticlesColl)
	samples := []entity.Article{
		{
			Title:       "Welcome to the newsroom",
			Category:    "general",
			Status:      entity.StatusPublished,
			Description: "First published story seeded for local development.",
			ImageURL:    "https://placehold.co/600x400",
		},
		{
			Title:       "Unfinished draft",
			Category:    "general",
			Status:      entity.StatusDraft,
			Description: "A draft story that is not visible as published.",
			ImageURL:    "https://placehold.co/600x400",
		},
	}
	for _, a := range samples {
		a.CreatedAt = time.Now().Format("2006-01-02 15:04:05")
		r, err := articles.UpdateOne(ctx,
			bson.M{"title": a.Title},
			bson.M{"$setOnInsert": a},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Fatalf("failed to seed article %q: %v", a.Title, err)
		}
		if r.UpsertedCount > 0 {
			fmt.Printf("seeded article: %s\n", a.Title)
		}
	}
}
