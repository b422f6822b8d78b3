package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config file")
	listOnly := flag.Bool("list", false, "list indexes and document counts without creating anything")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	m, err := store.Connect(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer m.Close(context.Background())
	log.Printf("Connected to %s", cfg.Storage.Database)

	if *listOnly {
		if err := list(ctx, m); err != nil {
			log.Fatal(err)
		}
		return
	}

	created, err := m.EnsureIndexes(ctx, store.Indexes)
	for _, name := range created {
		fmt.Println("  OK  ", name)
	}
	if err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	fmt.Printf("Indexes ensured: %d\n", len(created))
}

func list(ctx context.Context, m *store.Mongo) error {
	collections := []string{
		domain.CollectionNewsletter,
		domain.CollectionContacts,
		domain.CollectionAssessments,
		domain.CollectionROI,
	}
	return m.WithSession(ctx, func(ctx context.Context, db store.Database) error {
		for _, coll := range collections {
			n, err := db.Collection(coll).Count(ctx)
			if err != nil {
				return err
			}
			names, err := m.IndexNames(ctx, coll)
			if err != nil {
				return err
			}
			fmt.Printf("  %-26s %8d docs  indexes=%v\n", coll, n, names)
		}
		return nil
	})
}
