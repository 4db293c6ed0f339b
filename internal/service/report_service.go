package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/admitboard/admitboard-api/internal/catalog"
	"github.com/admitboard/admitboard-api/internal/dto"
	"github.com/admitboard/admitboard-api/internal/observability"
	"github.com/admitboard/admitboard-api/internal/store"
)

// ErrReportNotFound indicates the report key is not in the catalog.
var ErrReportNotFound = errors.New("report not found")

// ReportStore is the slice of the data access layer the report service needs.
type ReportStore interface {
	RunReport(ctx context.Context, report catalog.Report) ([]store.Row, error)
}

// ReportService runs catalog reports and describes them for the UI.
type ReportService interface {
	Describe() []dto.ReportDescriptor
	Run(ctx context.Context, key string) ([]store.Row, error)
}

type reportService struct {
	store  ReportStore
	logger zerolog.Logger
}

// NewReportService constructs the report service.
func NewReportService(store ReportStore, logger zerolog.Logger) ReportService {
	return &reportService{
		store:  store,
		logger: logger.With().Str("component", "report_service").Logger(),
	}
}

func (s *reportService) Describe() []dto.ReportDescriptor {
	reports := catalog.Reports()
	descriptors := make([]dto.ReportDescriptor, 0, len(reports))
	for _, report := range reports {
		descriptors = append(descriptors, dto.ReportDescriptor{Key: report.Key(), Title: report.Title()})
	}
	return descriptors
}

func (s *reportService) Run(ctx context.Context, key string) ([]store.Row, error) {
	report, err := catalog.Parse(key)
	if err != nil {
		return nil, ErrReportNotFound
	}

	tracer := otel.Tracer("github.com/admitboard/admitboard-api/internal/service/report")
	ctx, span := tracer.Start(ctx, "report.run")
	span.SetAttributes(attribute.String("report.key", report.Key()))
	defer span.End()

	observability.ReportRuns().WithLabelValues(report.Key()).Inc()

	rows, err := s.store.RunReport(ctx, report)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "report_run_failed")
		s.logger.Error().Err(err).Str("report", key).Msg("report run failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("report.rows", len(rows)))
	return rows, nil
}
