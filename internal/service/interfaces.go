package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetBySlug(ctx context.Context, slug string) (*TeamResponse, error)
	Count(ctx context.Context) (int64, error)
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	GetAll(ctx context.Context) ([]MatchResponse, error)
	GetLive(ctx context.Context) ([]MatchResponse, error)
	GetUpcoming(ctx context.Context) ([]MatchResponse, error)
}

// StandingServiceInterface defines the interface for standing service
type StandingServiceInterface interface {
	GetAll(ctx context.Context) ([]StandingResponse, error)
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	GetTopScorers(ctx context.Context, limit int) ([]PlayerResponse, error)
}

// PaymentServiceInterface defines the interface for the donation payment flow
type PaymentServiceInterface interface {
	Setup() (*PayPalSetupResponse, error)
	CreateOrder(ctx context.Context, req *CreateOrderRequest, returnBase string) (*CreateOrderResponse, error)
	CaptureOrder(ctx context.Context, id string, req *CaptureOrderRequest) (*CaptureOrderResponse, error)
}
