package implementation

import (
	"context"
	"errors"

	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/mapper"
	"ai-interviewer-be/internal/model"
	"ai-interviewer-be/internal/repository/contract"
	"ai-interviewer-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionRecordMapper
}

func NewSessionRecordRepository(db *gorm.DB) contract.SessionRecordRepository {
	return &SessionRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionRecordMapper(),
	}
}

func (r *SessionRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionRecordRepositoryImpl) Create(ctx context.Context, record *entity.SessionRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionRecordRepositoryImpl) Update(ctx context.Context, record *entity.SessionRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionRecordRepositoryImpl) FindBySessionId(ctx context.Context, sessionId uuid.UUID) (*entity.SessionRecord, error) {
	var m model.SessionRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.BySessionId{SessionId: sessionId})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionRecordRepositoryImpl) FindByGroup(ctx context.Context, group string) ([]*entity.SessionRecord, error) {
	var models []*model.SessionRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByGroup{Group: group})
	if err := query.Order("started_at asc").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
