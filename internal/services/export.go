package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/opio/bpmonitor/internal/logging"
	"github.com/opio/bpmonitor/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	readingsSheet = "Readings"
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var readingsHeader = []interface{}{"Date", "Systolic", "Diastolic", "Heart rate", "Manual", "Notes"}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Settings locate and authenticate against an S3-compatible store.
type S3Settings struct {
	Region       string
	User         string
	Password     string
	BaseEndpoint string
}

// NewS3Client builds a path-style S3 client with static credentials, which
// is what MinIO expects.
func NewS3Client(ctx context.Context, st S3Settings) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(st.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			st.User,
			st.Password,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(st.BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// ObjectPutter uploads one object. *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ReadingLister lists an account's readings, newest first.
type ReadingLister interface {
	ListReadingsForAccount(ctx context.Context, accountID int64) ([]models.Reading, error)
}

// ExportService uploads the reading history of the signed-in account as an
// xlsx workbook.
type ExportService struct {
	readings ReadingLister
	putter   ObjectPutter
	bucket   string
	logger   logging.Logger
}

func NewExportService(readings ReadingLister, putter ObjectPutter, bucket string, logger logging.Logger) *ExportService {
	return &ExportService{readings: readings, putter: putter, bucket: bucket, logger: logger}
}

// Export uploads the workbook and returns its object key.
func (s *ExportService) Export(ctx context.Context) (string, error) {
	acc, err := requestAccount(ctx)
	if err != nil {
		return "", err
	}

	list, err := s.readings.ListReadingsForAccount(ctx, acc.ID)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	body, err := BuildReadingsWorkbook(list)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	// patient IDs are free text; keep each one a single path segment
	key := fmt.Sprintf("readings/%s/%s.xlsx", url.PathEscape(acc.PatientID), uuid.New())
	_, err = s.putter.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(xlsxMediaType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("export upload: %w", err)
	}

	s.logger.Info(ctx, "history exported", "account_id", acc.ID, "key", key, "readings", len(list))
	return key, nil
}

// BuildReadingsWorkbook renders readings into a single-sheet xlsx file.
func BuildReadingsWorkbook(readings []models.Reading) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", readingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(readingsSheet, "A1", &readingsHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(readingsSheet, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, r := range readings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := []interface{}{
			r.Timestamp.Format("2006-01-02 15:04"),
			r.Systolic,
			r.Diastolic,
			r.HeartRate,
			r.Manual,
			r.Notes,
		}
		if err := f.SetSheetRow(readingsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	for col, width := range []float64{18, 10, 10, 11, 8, 30} {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(readingsSheet, name, name, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
