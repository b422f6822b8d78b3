package operator

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/domain"
	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/logger"
)

// ExportFileName names the CSV for an export taken at t.
func ExportFileName(t time.Time) string {
	return "orgainse_leads_" + t.Format("20060102_150405") + ".csv"
}

// SubscribersCSV renders subscriptions with the header id,email,timestamp,status.
func SubscribersCSV(subs []domain.NewsletterSubscription) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"id", "email", "timestamp", "status"}); err != nil {
		return nil, err
	}
	for _, s := range subs {
		rec := []string{
			s.ID,
			s.Email,
			s.SubscribedAt.UTC().Format(time.RFC3339),
			string(s.Status),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Export writes every subscriber to a timestamped CSV in the export
// directory and returns its path. When an uploader is configured the file is
// also stored under exports/<filename>.
func (o *Operator) Export(ctx context.Context) (string, error) {
	subs, err := o.Subscribers(ctx)
	if err != nil {
		return "", err
	}
	data, err := SubscribersCSV(subs)
	if err != nil {
		return "", fmt.Errorf("render csv: %w", err)
	}

	name := ExportFileName(o.clock.Now())
	path := filepath.Join(o.exportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	logger.Info("subscribers exported", "path", path, "rows", len(subs))

	if o.uploader != nil {
		key := "exports/" + name
		if err := o.uploader.Upload(ctx, key, data); err != nil {
			return path, fmt.Errorf("upload export: %w", err)
		}
		logger.Info("export uploaded", "key", key)
	}
	return path, nil
}
