package worklogrepo

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkLogRepository implements WorkLogRepository using GORM.
type GormWorkLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkLogRepository creates a new GORM workflow record repository.
func NewGormWorkLogRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkLogRepository {
	return &GormWorkLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new workflow record to the database.
func (r *GormWorkLogRepository) Add(ctx context.Context, aggregate *worklog.WorkLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing workflow record. Every column is written so a
// cleared queue position lands as NULL.
func (r *GormWorkLogRepository) Update(ctx context.Context, aggregate *worklog.WorkLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkLogDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a workflow record by ID.
func (r *GormWorkLogRepository) Get(ctx context.Context, id kernel.UUID) (*worklog.WorkLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkLogDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workLog", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndLocation retrieves the record for an order at a location.
func (r *GormWorkLogRepository) GetByOrderAndLocation(
	ctx context.Context,
	orderID kernel.UUID,
	locationID kernel.UUID,
) (*worklog.WorkLog, error) {
	if err := errors.Join(orderID.Validate(), locationID.Validate()); err != nil {
		return nil, err
	}

	var dto WorkLogDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND location_id = ?", orderID.Bytes(), locationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workLog",
				fmt.Sprintf("order %s at location %s", orderID, locationID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every workflow record of an order.
func (r *GormWorkLogRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*worklog.WorkLog, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkLogDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetQueuedByLocation retrieves a location's queue in position order.
func (r *GormWorkLogRepository) GetQueuedByLocation(
	ctx context.Context,
	locationID kernel.UUID,
) ([]*worklog.WorkLog, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkLogDTO
	err := r.db.WithContext(ctx).
		Where("location_id = ? AND status = ?", locationID.Bytes(), int(worklog.InQueue)).
		Order("queue_position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetQueuedByOrder retrieves the order's queued records across all locations.
func (r *GormWorkLogRepository) GetQueuedByOrder(ctx context.Context, orderID kernel.UUID) ([]*worklog.WorkLog, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkLogDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(worklog.InQueue)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []WorkLogDTO) ([]*worklog.WorkLog, error) {
	records := make([]*worklog.WorkLog, 0, len(dtos))
	for _, dto := range dtos {
		wl, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, wl)
	}
	return records, nil
}
