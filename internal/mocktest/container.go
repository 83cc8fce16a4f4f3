package mocktest

type MockTestContainer struct {
	Handler *Handler
	Service Service
}

func NewMockTestContainer(repo Repository) *MockTestContainer {
	service := NewService(repo)
	handler := NewHandler(service)

	return &MockTestContainer{
		Handler: handler,
		Service: service,
	}
}
