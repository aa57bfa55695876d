package mock

import (
	"context"

	"github.com/fwojciec/artext"
)

var (
	_ artext.CaptureStore  = (*CaptureStore)(nil)
	_ artext.RecordService = (*RecordService)(nil)
)

// CaptureStore is a mock implementation of artext.CaptureStore.
type CaptureStore struct {
	SaveFn func(ctx context.Context, c *artext.Capture) (string, error)
}

func (s *CaptureStore) Save(ctx context.Context, c *artext.Capture) (string, error) {
	return s.SaveFn(ctx, c)
}

// RecordService is a mock implementation of artext.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *artext.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*artext.Record, error)
	FindRecordsFn    func(ctx context.Context, filter artext.RecordFilter) ([]*artext.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *artext.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*artext.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter artext.RecordFilter) ([]*artext.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
