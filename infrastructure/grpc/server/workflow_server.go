package server

import (
	"collab-hub/domain"
	"collab-hub/errors"
	pb "collab-hub/infrastructure/grpc/api"
	"collab-hub/services"
	"context"
	"log/slog"
)

type WorkflowServer struct {
	pb.UnimplementedWorkflowServiceServer
	workflowService services.IWorkflowService
	log             *slog.Logger
}

func NewWorkflowServer(workflowService services.IWorkflowService, log *slog.Logger) *WorkflowServer {
	return &WorkflowServer{workflowService: workflowService, log: log}
}

func (s *WorkflowServer) AssignTicket(ctx context.Context, req *pb.AssignTicketRequest) (*pb.Ticket, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	ticket, err := s.workflowService.AssignTicket(ctx, domain.AssignTicketCommand{
		Actor:      user,
		TicketID:   req.TicketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toTicketResponse(ticket), nil
}

func (s *WorkflowServer) ChangeDocumentStatus(ctx context.Context, req *pb.ChangeDocumentStatusRequest) (*pb.Document, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	document, err := s.workflowService.ChangeDocumentStatus(ctx, domain.ChangeDocumentStatusCommand{
		Actor:      user,
		Kind:       domain.DocumentKind(req.Kind),
		DocumentID: req.DocumentID,
		Status:     domain.DocumentStatus(req.Status),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toDocumentResponse(document), nil
}

func (s *WorkflowServer) SubmitFeedback(ctx context.Context, req *pb.SubmitFeedbackRequest) (*pb.Document, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	document, err := s.workflowService.SubmitFeedback(ctx, domain.SubmitFeedbackCommand{
		Author:     user,
		Kind:       domain.DocumentKind(req.Kind),
		DocumentID: req.DocumentID,
		Message:    req.Message,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toDocumentResponse(document), nil
}

func (s *WorkflowServer) SubmitReport(ctx context.Context, req *pb.SubmitReportRequest) (*pb.Report, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	report, err := s.workflowService.SubmitReport(ctx, domain.SubmitReportCommand{
		Author:    user,
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Body:      req.Body,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toReportResponse(report), nil
}
