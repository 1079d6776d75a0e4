package mocks

import (
	"context"
	"io"

	"github.com/NewsReader/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTransformer struct {
	mock.Mock
}

func (m *MockTransformer) Transform(reader io.Reader) ([]domain.Article, error) {
	args := m.Called(reader)

	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

type MockUpstream struct {
	mock.Mock
}

func (m *MockUpstream) Get(ctx context.Context, apiKey string, req domain.ProxyRequest) (*domain.UpstreamResponse, error) {
	args := m.Called(ctx, apiKey, req)

	var resp *domain.UpstreamResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*domain.UpstreamResponse)
	}
	return resp, args.Error(1)
}

type MockNewsGateway struct {
	mock.Mock
}

func (m *MockNewsGateway) Fetch(ctx context.Context, req domain.ProxyRequest) ([]domain.Article, error) {
	args := m.Called(ctx, req)

	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

type MockThemeRepository struct {
	mock.Mock
}

func (m *MockThemeRepository) LoadTheme() (domain.Theme, error) {
	args := m.Called()
	return args.Get(0).(domain.Theme), args.Error(1)
}

func (m *MockThemeRepository) SaveTheme(theme domain.Theme) error {
	args := m.Called(theme)
	return args.Error(0)
}
