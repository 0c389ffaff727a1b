package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"gorm.io/gorm"
)

const threadPageSize = 10

// replyTreeQuery walks the reply forest downward from a root thread. UNION
// (not UNION ALL) deduplicates rows, so the recursion terminates even if a
// corrupt parent chain ever forms a cycle.
const replyTreeQuery = `
WITH RECURSIVE thread_tree AS (
    SELECT thread_id, thread_profile_id, thread_reply_thread_id,
           thread_content, thread_datetime, thread_image_url
    FROM thread
    WHERE thread_id = ?
    UNION
    SELECT t.thread_id, t.thread_profile_id, t.thread_reply_thread_id,
           t.thread_content, t.thread_datetime, t.thread_image_url
    FROM thread t
             INNER JOIN thread_tree tt ON tt.thread_id = t.thread_reply_thread_id
)
SELECT *
FROM thread_tree
ORDER BY thread_datetime`

type threadRepository struct {
	db *gorm.DB
}

func NewThreadRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{db: db}
}

// Insert persists the thread with a fresh id and the current time. Any
// caller-supplied id or timestamp is discarded.
func (r *threadRepository) Insert(ctx context.Context, thread *domain.Thread) error {
	thread.ThreadID = uuid.New()
	thread.ThreadDatetime = time.Now().UTC()
	return r.db.WithContext(ctx).Create(thread).Error
}

func (r *threadRepository) GetAll(ctx context.Context) ([]domain.Thread, error) {
	var threads []domain.Thread
	err := r.db.WithContext(ctx).
		Order("thread_datetime DESC").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *threadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
	var threads []domain.Thread
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", id).
		Limit(2).
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	switch len(threads) {
	case 0:
		return nil, nil
	case 1:
		return &threads[0], nil
	default:
		return nil, domain.ErrIntegrityViolation
	}
}

func (r *threadRepository) GetByProfileName(ctx context.Context, profileName string) ([]domain.Thread, error) {
	var threads []domain.Thread
	err := r.db.WithContext(ctx).
		Joins("JOIN profile ON profile.profile_id = thread.thread_profile_id").
		Where("profile.profile_name = ?", profileName).
		Where("thread_reply_thread_id IS NULL").
		Order("thread_datetime DESC").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *threadRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Thread, error) {
	var threads []domain.Thread
	err := r.db.WithContext(ctx).
		Where("thread_profile_id = ?", profileID).
		Where("thread_reply_thread_id IS NULL").
		Order("thread_datetime DESC").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *threadRepository) GetReplyTree(ctx context.Context, id uuid.UUID) ([]domain.Thread, error) {
	var threads []domain.Thread
	err := r.db.WithContext(ctx).
		Raw(replyTreeQuery, id).
		Scan(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *threadRepository) GetPage(ctx context.Context, page int) ([]domain.Thread, error) {
	if page < 1 {
		return nil, domain.ErrInvalidPage
	}
	var threads []domain.Thread
	err := r.db.WithContext(ctx).
		Where("thread_reply_thread_id IS NULL").
		Order("thread_datetime DESC").
		Limit(threadPageSize).
		Offset((page - 1) * threadPageSize).
		Find(&threads).Error
	if err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *threadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&domain.Thread{}, "thread_id = ?", id).Error
}
