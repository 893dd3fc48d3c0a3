package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IssueService interface {
	// User
	CreateIssue(ctx context.Context, userID uuid.UUID, req *request.CreateIssueRequest) (*response.IssueResponse, error)
	GetUserIssues(ctx context.Context, userID uuid.UUID) ([]response.IssueResponse, error)

	// Admin
	GetAllIssues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.IssueResponse], error)
	AddRemark(ctx context.Context, issueID string, req *request.IssueRemarkRequest) (*response.IssueResponse, error)
}

type issueService struct {
	issueRepo repository.IssueRepository
	log       *zap.Logger
}

func NewIssueService(issueRepo repository.IssueRepository, log *zap.Logger) IssueService {
	return &issueService{
		issueRepo: issueRepo,
		log:       log.With(zap.String("service", "issue")),
	}
}

func (s *issueService) CreateIssue(ctx context.Context, userID uuid.UUID, req *request.CreateIssueRequest) (*response.IssueResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	issue := &entity.Issue{
		BaseSimple:  entity.NewBaseSimple(time.Now()),
		UserID:      userID,
		Issue:       strings.TrimSpace(req.Issue),
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}

	s.log.Info("Issue raised", zap.String("issue_id", issue.ID.String()), zap.String("user_id", userID.String()))

	resp := response.IssueToResponse(issue, "", "")
	return &resp, nil
}

func (s *issueService) GetUserIssues(ctx context.Context, userID uuid.UUID) ([]response.IssueResponse, error) {
	issues, err := s.issueRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user issues: %w", err)
	}

	return response.MapSlice(issues, func(i *entity.IssueDetail) response.IssueResponse {
		return response.IssueDetailToResponse(i)
	}), nil
}

func (s *issueService) GetAllIssues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.IssueResponse], error) {
	issues, err := s.issueRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	total, err := s.issueRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count issues: %w", err)
	}

	data := response.MapSlice(issues, func(i *entity.IssueDetail) response.IssueResponse {
		return response.IssueDetailToResponse(i)
	})

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// AddRemark - remark admin menandai issue sudah dijawab, boleh ditimpa
func (s *issueService) AddRemark(ctx context.Context, issueID string, req *request.IssueRemarkRequest) (*response.IssueResponse, error) {
	id, err := parseID("id", issueID)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	remark := strings.TrimSpace(req.Remark)
	if err := s.issueRepo.AddRemark(ctx, id, remark, time.Now()); err != nil {
		return nil, err
	}

	issue, err := s.issueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find issue: %w", err)
	}
	if issue == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Issue not found")
	}

	s.log.Info("Issue answered", zap.String("issue_id", id.String()))

	resp := response.IssueDetailToResponse(issue)
	return &resp, nil
}
