package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/config"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

type checkResult struct {
	Name    string
	Passed  bool
	Detail  string
	Elapsed time.Duration
}

// leadCollections maps each lead collection to the source tag its records carry.
var leadCollections = []struct {
	Name   string
	Source string
}{
	{domain.CollectionNewsletter, domain.SourceNewsletter},
	{domain.CollectionContacts, domain.SourceContact},
	{domain.CollectionAssessments, domain.SourceAssessment},
	{domain.CollectionROI, domain.SourceROI},
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=========================================================")
	fmt.Println(" Lead Store Verification")
	fmt.Println("=========================================================")
	fmt.Printf("Backend:   %s\n", cfg.Storage.Type)
	fmt.Printf("Database:  %s\n", cfg.Storage.Database)
	fmt.Println("---------------------------------------------------------")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	st, err := store.New(ctx, cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: cannot connect to store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close(context.Background())

	results := runChecks(ctx, st)
	if !printReport(results) {
		os.Exit(1)
	}
}

func runChecks(ctx context.Context, st store.Store) []checkResult {
	results := []checkResult{checkPing(ctx, st)}
	for _, lc := range leadCollections {
		results = append(results, checkRecords(ctx, st, lc.Name, lc.Source))
	}
	results = append(results, checkUniqueEmails(ctx, st))
	for _, lc := range leadCollections {
		results = append(results, checkIndexes(ctx, st, lc.Name))
	}
	return results
}

func printReport(results []checkResult) bool {
	fmt.Println()
	fmt.Println("=========================================================")
	fmt.Println(" VERIFICATION REPORT")
	fmt.Println("=========================================================")

	allPassed := true
	for i, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("  [%d] %-45s %s  (%s)\n", i+1, r.Name, status, r.Elapsed.Round(time.Millisecond))
		if r.Detail != "" {
			for _, line := range strings.Split(r.Detail, "\n") {
				fmt.Printf("      %s\n", line)
			}
		}
	}

	fmt.Println("=========================================================")
	if allPassed {
		fmt.Println("  OVERALL: PASS  - All verifications succeeded")
	} else {
		fmt.Println("  OVERALL: FAIL  - One or more verifications failed")
	}
	fmt.Println("=========================================================")
	return allPassed
}

func checkPing(ctx context.Context, st store.Store) checkResult {
	start := time.Now()
	name := "Store reachable"
	if err := st.Ping(ctx); err != nil {
		return checkResult{Name: name, Passed: false, Detail: err.Error(), Elapsed: time.Since(start)}
	}
	return checkResult{Name: name, Passed: true, Elapsed: time.Since(start)}
}

func loadAll(ctx context.Context, st store.Store, collection string) ([]bson.M, error) {
	var docs []bson.M
	err := st.WithSession(ctx, func(ctx context.Context, db store.Database) error {
		var err error
		docs, err = db.Collection(collection).Recent(ctx, "_id", 0)
		return err
	})
	return docs, err
}

// checkRecords verifies every document has a unique non-empty id, the
// expected source tag and a normalized email.
func checkRecords(ctx context.Context, st store.Store, collection, source string) checkResult {
	start := time.Now()
	name := fmt.Sprintf("Records well-formed in %s", collection)

	docs, err := loadAll(ctx, st, collection)
	if err != nil {
		return checkResult{Name: name, Passed: false, Detail: fmt.Sprintf("Query error: %v", err), Elapsed: time.Since(start)}
	}

	var problems []string
	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		id, _ := doc["id"].(string)
		switch {
		case id == "":
			problems = append(problems, fmt.Sprintf("document %v has no id", doc["_id"]))
			continue
		case seen[id]:
			problems = append(problems, fmt.Sprintf("id %s appears more than once", id))
		}
		seen[id] = true

		if got, _ := doc["source"].(string); got != source {
			problems = append(problems, fmt.Sprintf("id %s has source %q, want %q", id, got, source))
		}
		if email, _ := doc["email"].(string); email != strings.ToLower(strings.TrimSpace(email)) {
			problems = append(problems, fmt.Sprintf("id %s has unnormalized email", id))
		}
	}

	if len(problems) > 0 {
		return checkResult{Name: name, Passed: false, Detail: strings.Join(problems, "\n"), Elapsed: time.Since(start)}
	}
	return checkResult{Name: name, Passed: true, Detail: fmt.Sprintf("%d documents", len(docs)), Elapsed: time.Since(start)}
}

// checkUniqueEmails reports newsletter addresses stored more than once, which
// can only happen when two signups race.
func checkUniqueEmails(ctx context.Context, st store.Store) checkResult {
	start := time.Now()
	name := "Newsletter emails unique"

	docs, err := loadAll(ctx, st, domain.CollectionNewsletter)
	if err != nil {
		return checkResult{Name: name, Passed: false, Detail: fmt.Sprintf("Query error: %v", err), Elapsed: time.Since(start)}
	}

	counts := map[string]int{}
	for _, doc := range docs {
		if email, _ := doc["email"].(string); email != "" {
			counts[email]++
		}
	}
	var dupes []string
	for email, n := range counts {
		if n > 1 {
			dupes = append(dupes, fmt.Sprintf("%s x%d", email, n))
		}
	}
	if len(dupes) > 0 {
		return checkResult{Name: name, Passed: false, Detail: strings.Join(dupes, "\n"), Elapsed: time.Since(start)}
	}
	return checkResult{Name: name, Passed: true, Detail: fmt.Sprintf("%d addresses", len(counts)), Elapsed: time.Since(start)}
}

func checkIndexes(ctx context.Context, st store.Store, collection string) checkResult {
	start := time.Now()
	name := fmt.Sprintf("Indexes present on %s", collection)

	ix, ok := st.(store.Indexer)
	if !ok {
		return checkResult{Name: name, Passed: true, Detail: "backend has no secondary indexes", Elapsed: time.Since(start)}
	}
	present, err := ix.IndexNames(ctx, collection)
	if err != nil {
		return checkResult{Name: name, Passed: false, Detail: fmt.Sprintf("Query error: %v", err), Elapsed: time.Since(start)}
	}

	have := make(map[string]bool, len(present))
	for _, n := range present {
		have[n] = true
	}
	var missing []string
	for _, spec := range store.IndexesFor(collection) {
		if !have[spec.Name] {
			missing = append(missing, spec.Name)
		}
	}
	if len(missing) > 0 {
		return checkResult{Name: name, Passed: false, Detail: "missing: " + strings.Join(missing, ", ") + " (run cmd/migrate)", Elapsed: time.Since(start)}
	}
	return checkResult{Name: name, Passed: true, Detail: strings.Join(present, ", "), Elapsed: time.Since(start)}
}
