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

type AnswerRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnswerRecordMapper
}

func NewAnswerRecordRepository(db *gorm.DB) contract.AnswerRecordRepository {
	return &AnswerRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnswerRecordMapper(),
	}
}

func (r *AnswerRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnswerRecordRepositoryImpl) Create(ctx context.Context, record *entity.AnswerRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnswerRecordRepositoryImpl) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.AnswerRecord, error) {
	var models []*model.AnswerRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.BySessionId{SessionId: sessionId})
	if err := query.Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnswerRecordRepositoryImpl) FindByGroup(ctx context.Context, group string) ([]*entity.AnswerRecord, error) {
	var models []*model.AnswerRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByGroup{Group: group})
	if err := query.Scopes(scope.OrderByCreatedAsc).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
