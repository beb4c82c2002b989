package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	WorkflowService_AssignTicket_FullMethodName         = "/collabhub.v1.WorkflowService/AssignTicket"
	WorkflowService_ChangeDocumentStatus_FullMethodName = "/collabhub.v1.WorkflowService/ChangeDocumentStatus"
	WorkflowService_SubmitFeedback_FullMethodName       = "/collabhub.v1.WorkflowService/SubmitFeedback"
	WorkflowService_SubmitReport_FullMethodName         = "/collabhub.v1.WorkflowService/SubmitReport"
)

// WorkflowServiceClient is the client API for WorkflowService.
type WorkflowServiceClient interface {
	AssignTicket(ctx context.Context, in *AssignTicketRequest, opts ...grpc.CallOption) (*Ticket, error)
	ChangeDocumentStatus(ctx context.Context, in *ChangeDocumentStatusRequest, opts ...grpc.CallOption) (*Document, error)
	SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) (*Document, error)
	SubmitReport(ctx context.Context, in *SubmitReportRequest, opts ...grpc.CallOption) (*Report, error)
}

type workflowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWorkflowServiceClient(cc grpc.ClientConnInterface) WorkflowServiceClient {
	return &workflowServiceClient{cc}
}

func (c *workflowServiceClient) AssignTicket(ctx context.Context, in *AssignTicketRequest, opts ...grpc.CallOption) (*Ticket, error) {
	out := new(Ticket)
	if err := c.cc.Invoke(ctx, WorkflowService_AssignTicket_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowServiceClient) ChangeDocumentStatus(ctx context.Context, in *ChangeDocumentStatusRequest, opts ...grpc.CallOption) (*Document, error) {
	out := new(Document)
	if err := c.cc.Invoke(ctx, WorkflowService_ChangeDocumentStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowServiceClient) SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) (*Document, error) {
	out := new(Document)
	if err := c.cc.Invoke(ctx, WorkflowService_SubmitFeedback_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workflowServiceClient) SubmitReport(ctx context.Context, in *SubmitReportRequest, opts ...grpc.CallOption) (*Report, error) {
	out := new(Report)
	if err := c.cc.Invoke(ctx, WorkflowService_SubmitReport_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// WorkflowServiceServer is the server API for WorkflowService. The caller is the actor of every change.
type WorkflowServiceServer interface {
	AssignTicket(context.Context, *AssignTicketRequest) (*Ticket, error)
	ChangeDocumentStatus(context.Context, *ChangeDocumentStatusRequest) (*Document, error)
	SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*Document, error)
	SubmitReport(context.Context, *SubmitReportRequest) (*Report, error)
}

// UnimplementedWorkflowServiceServer answers codes.Unimplemented to every call.
type UnimplementedWorkflowServiceServer struct{}

func (UnimplementedWorkflowServiceServer) AssignTicket(context.Context, *AssignTicketRequest) (*Ticket, error) {
	return nil, status.Error(codes.Unimplemented, "method AssignTicket not implemented")
}

func (UnimplementedWorkflowServiceServer) ChangeDocumentStatus(context.Context, *ChangeDocumentStatusRequest) (*Document, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangeDocumentStatus not implemented")
}

func (UnimplementedWorkflowServiceServer) SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*Document, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitFeedback not implemented")
}

func (UnimplementedWorkflowServiceServer) SubmitReport(context.Context, *SubmitReportRequest) (*Report, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitReport not implemented")
}

func RegisterWorkflowServiceServer(s grpc.ServiceRegistrar, srv WorkflowServiceServer) {
	s.RegisterService(&WorkflowService_ServiceDesc, srv)
}

func _WorkflowService_AssignTicket_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AssignTicketRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowServiceServer).AssignTicket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowService_AssignTicket_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorkflowServiceServer).AssignTicket(ctx, req.(*AssignTicketRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowService_ChangeDocumentStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ChangeDocumentStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowServiceServer).ChangeDocumentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowService_ChangeDocumentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorkflowServiceServer).ChangeDocumentStatus(ctx, req.(*ChangeDocumentStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowService_SubmitFeedback_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SubmitFeedbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowServiceServer).SubmitFeedback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowService_SubmitFeedback_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorkflowServiceServer).SubmitFeedback(ctx, req.(*SubmitFeedbackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkflowService_SubmitReport_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SubmitReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkflowServiceServer).SubmitReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkflowService_SubmitReport_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorkflowServiceServer).SubmitReport(ctx, req.(*SubmitReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var WorkflowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collabhub.v1.WorkflowService",
	HandlerType: (*WorkflowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AssignTicket",
			Handler:    _WorkflowService_AssignTicket_Handler,
		},
		{
			MethodName: "ChangeDocumentStatus",
			Handler:    _WorkflowService_ChangeDocumentStatus_Handler,
		},
		{
			MethodName: "SubmitFeedback",
			Handler:    _WorkflowService_SubmitFeedback_Handler,
		},
		{
			MethodName: "SubmitReport",
			Handler:    _WorkflowService_SubmitReport_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
	Metadata: "collabhub/v1",
}
