package implementation

import (
	"context"

	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/mapper"
	"ai-interviewer-be/internal/model"
	"ai-interviewer-be/internal/repository/contract"
	"ai-interviewer-be/internal/repository/scope"
	"ai-interviewer-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TelemetryRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TelemetryRecordMapper
}

func NewTelemetryRecordRepository(db *gorm.DB) contract.TelemetryRecordRepository {
	return &TelemetryRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewTelemetryRecordMapper(),
	}
}

func (r *TelemetryRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TelemetryRecordRepositoryImpl) Create(ctx context.Context, record *entity.TelemetryRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *TelemetryRecordRepositoryImpl) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.TelemetryRecord, error) {
	var models []*model.TelemetryRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.BySessionId{SessionId: sessionId})
	if err := query.Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TelemetryRecordRepositoryImpl) FindByGroupAndEvent(ctx context.Context, group string, event string) ([]*entity.TelemetryRecord, error) {
	var models []*model.TelemetryRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByGroup{Group: group}, specification.ByEvent{Event: event})
	if err := query.Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
