package operator

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/store"
)

// dashboardRecent is how many of the newest documents the dashboard shows
// per collection.
const dashboardRecent = 3

// Section is one dashboard row: a label, its collection and sort field.
type Section struct {
	Label      string
	Collection string
	SortField  string
}

// DashboardSections lists the collections the dashboard summarizes. "leads"
// and "consultations" are written by other tools and may be empty.
var DashboardSections = []Section{
	{Label: "Newsletter subscribers", Collection: domain.CollectionNewsletter, SortField: "subscribed_at"},
	{Label: "Contact messages", Collection: domain.CollectionContacts, SortField: "submitted_at"},
	{Label: "Leads", Collection: "leads", SortField: "_id"},
	{Label: "AI assessments", Collection: domain.CollectionAssessments, SortField: "completed_at"},
	{Label: "Consultations", Collection: "consultations", SortField: "_id"},
}

// Subscribers returns every newsletter subscription, newest first.
func (o *Operator) Subscribers(ctx context.Context) ([]domain.NewsletterSubscription, error) {
	var subs []domain.NewsletterSubscription
	err := o.store.WithSession(ctx, func(ctx context.Context, db store.Database) error {
		docs, err := db.Collection(domain.CollectionNewsletter).Recent(ctx, "subscribed_at", 0)
		if err != nil {
			return err
		}
		subs, err = store.DecodeAll[domain.NewsletterSubscription](docs)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}

// ListSubscribers prints every newsletter subscription, newest first.
func (o *Operator) ListSubscribers(ctx context.Context, out io.Writer) error {
	subs, err := o.Subscribers(ctx)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Fprintln(out, "No newsletter subscribers yet.")
		return nil
	}

	fmt.Fprintf(out, "\nNewsletter subscribers (%d):\n", len(subs))
	for i, s := range subs {
		name := strings.TrimSpace(s.FirstName + " " + s.LastName)
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(out, "%3d. %-35s %-25s %-10s %s  %s\n",
			i+1, s.Email, name, s.Region, s.SubscribedAt.UTC().Format(time.RFC3339), s.Status)
	}
	return nil
}

// SectionSummary is the count and newest documents of one collection.
type SectionSummary struct {
	Section
	Count  int64
	Recent []bson.M
}

// Summaries collects the dashboard figures inside a single store session.
func (o *Operator) Summaries(ctx context.Context) ([]SectionSummary, error) {
	summaries := make([]SectionSummary, 0, len(DashboardSections))
	err := o.store.WithSession(ctx, func(ctx context.Context, db store.Database) error {
		for _, sec := range DashboardSections {
			coll := db.Collection(sec.Collection)
			count, err := coll.Count(ctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", sec.Collection, err)
			}
			recent, err := coll.Recent(ctx, sec.SortField, dashboardRecent)
			if err != nil {
				return fmt.Errorf("recent %s: %w", sec.Collection, err)
			}
			summaries = append(summaries, SectionSummary{Section: sec, Count: count, Recent: recent})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return summaries, nil
}

// Dashboard prints per-collection counts and the newest entries of each.
func (o *Operator) Dashboard(ctx context.Context, out io.Writer) error {
	summaries, err := o.Summaries(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n=== Leads Dashboard ===")
	for _, s := range summaries {
		fmt.Fprintf(out, "%s: %d\n", s.Label, s.Count)
		for _, doc := range s.Recent {
			fmt.Fprintf(out, "    - %s\n", describe(doc, s.SortField))
		}
	}
	return nil
}

// describe renders a document as "who (when)" using whichever identifying
// fields it has.
func describe(doc bson.M, sortField string) string {
	who := "(unknown)"
	for _, key := range []string{"email", "name", "company_name", "id"} {
		if v, ok := doc[key].(string); ok && v != "" {
			who = v
			break
		}
	}

	var when time.Time
	switch v := doc[sortField].(type) {
	case primitive.DateTime:
		when = v.Time()
	case time.Time:
		when = v
	case primitive.ObjectID:
		when = v.Timestamp()
	}
	if when.IsZero() {
		return who
	}
	return fmt.Sprintf("%s (%s)", who, when.UTC().Format(time.RFC3339))
}
