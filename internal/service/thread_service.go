package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mara/thread-board-website/internal/domain"
	"github.com/mara/thread-board-website/internal/repository"
)

// FeedPublisher pushes newly posted threads to live feed subscribers.
type FeedPublisher interface {
	PublishThread(thread *domain.Thread)
}

type ThreadService struct {
	threadRepo repository.ThreadRepository
	feed       FeedPublisher
}

func NewThreadService(threadRepo repository.ThreadRepository, feed FeedPublisher) *ThreadService {
	return &ThreadService{
		threadRepo: threadRepo,
		feed:       feed,
	}
}

// PostThreadInput carries the caller-controlled fields of a new thread. The
// id and timestamp are assigned at insert.
type PostThreadInput struct {
	ThreadProfileID     uuid.UUID
	ThreadReplyThreadID *uuid.UUID
	ThreadContent       string
	ThreadImageURL      *string
}

func (s *ThreadService) Post(ctx context.Context, input PostThreadInput) (*domain.Thread, string, error) {
	if input.ThreadReplyThreadID != nil {
		parent, err := s.threadRepo.GetByID(ctx, *input.ThreadReplyThreadID)
		if err != nil {
			return nil, "", err
		}
		if parent == nil {
			return nil, "", domain.ErrThreadNotFound
		}
	}

	thread := &domain.Thread{
		ThreadProfileID:     input.ThreadProfileID,
		ThreadReplyThreadID: input.ThreadReplyThreadID,
		ThreadContent:       input.ThreadContent,
		ThreadImageURL:      input.ThreadImageURL,
	}
	if err := domain.Validate(thread); err != nil {
		return nil, "", err
	}

	if err := s.threadRepo.Insert(ctx, thread); err != nil {
		return nil, "", err
	}

	if s.feed != nil && thread.IsTopLevel() {
		s.feed.PublishThread(thread)
	}
	return thread, "Thread successfully posted", nil
}

func (s *ThreadService) All(ctx context.Context) ([]domain.Thread, error) {
	return s.threadRepo.GetAll(ctx)
}

func (s *ThreadService) ByID(ctx context.Context, id uuid.UUID) (*domain.Thread, error) {
	return s.threadRepo.GetByID(ctx, id)
}

func (s *ThreadService) ByProfileName(ctx context.Context, profileName string) ([]domain.Thread, error) {
	return s.threadRepo.GetByProfileName(ctx, profileName)
}

func (s *ThreadService) ByProfileID(ctx context.Context, profileID uuid.UUID) ([]domain.Thread, error) {
	return s.threadRepo.GetByProfileID(ctx, profileID)
}

func (s *ThreadService) ReplyTree(ctx context.Context, id uuid.UUID) ([]domain.Thread, error) {
	return s.threadRepo.GetReplyTree(ctx, id)
}

func (s *ThreadService) Page(ctx context.Context, page int) ([]domain.Thread, error) {
	return s.threadRepo.GetPage(ctx, page)
}

// Delete removes a thread. Only the author may delete; deleting a thread
// that no longer exists still succeeds, matching the unconditional delete
// contract.
func (s *ThreadService) Delete(ctx context.Context, requesterID, threadID uuid.UUID) (string, error) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return "", err
	}
	if thread != nil && thread.ThreadProfileID != requesterID {
		return "", domain.ErrNotThreadAuthor
	}

	if err := s.threadRepo.Delete(ctx, threadID); err != nil {
		return "", err
	}
	return "Thread successfully deleted", nil
}
