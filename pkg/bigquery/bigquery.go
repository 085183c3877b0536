package bigquery

import (
	"context"
	"fmt"
	"os"
	"strings"

	bq "google.golang.org/api/bigquery/v2"
	"google.golang.org/api/option"
)

// NewBigQueryService создает клиент BigQuery REST API.
// Учетные данные берутся из JSON, из файла сервисного аккаунта или из ADC, если ничего не задано.
func NewBigQueryService(ctx context.Context, credentialsJSON, credentialsFile string, extra ...option.ClientOption) (*bq.Service, error) {
	opts := []option.ClientOption{option.WithScopes(bq.BigqueryScope)}

	switch {
	case strings.TrimSpace(credentialsJSON) != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	case strings.TrimSpace(credentialsFile) != "":
		if _, err := os.Stat(credentialsFile); err != nil {
			return nil, fmt.Errorf("credentials file %s: %w", credentialsFile, err)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	opts = append(opts, extra...)

	svc, err := bq.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery service: %w", err)
	}
	return svc, nil
}
