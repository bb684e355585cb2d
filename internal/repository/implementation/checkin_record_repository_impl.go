package implementation

import (
	"context"

	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/mapper"
	"ai-interviewer-be/internal/model"
	"ai-interviewer-be/internal/repository/contract"
	"ai-interviewer-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckinRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CheckinRecordMapper
}

func NewCheckinRecordRepository(db *gorm.DB) contract.CheckinRecordRepository {
	return &CheckinRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewCheckinRecordMapper(),
	}
}

func (r *CheckinRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CheckinRecordRepositoryImpl) Create(ctx context.Context, record *entity.CheckinRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *CheckinRecordRepositoryImpl) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.CheckinRecord, error) {
	var models []*model.CheckinRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.BySessionId{SessionId: sessionId})
	if err := query.Order("day asc").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CheckinRecordRepositoryImpl) FindByGroup(ctx context.Context, group string) ([]*entity.CheckinRecord, error) {
	var models []*model.CheckinRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByGroup{Group: group})
	if err := query.Order("day asc").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
