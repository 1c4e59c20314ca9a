package server

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

type MockSecurityLayer struct {
	mock.Mock
}

func (m *MockSecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)
	if ln := args.Get(0); ln != nil {
		return ln.(net.Listener), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGRPCServer_Address(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), ":0")
	assert.Equal(t, ":0", s.Address())
}

func TestGRPCServer_Stop(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), ":0")
	err := s.Stop(context.Background())
	assert.NoError(t, err)
}

func TestGRPCServer_Start_ListenError(t *testing.T) {
	sec := &MockSecurityLayer{}
	sec.On("Listen", "tcp", ":50051").Return(nil, errors.New("address in use"))

	s := NewGRPCServer(grpc.NewServer(), ":50051")
	err := s.Start(sec)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
	sec.AssertExpectations(t)
}

func TestGRPCServer_Start_ListensAndServes(t *testing.T) {
	t.Parallel()

	gs := grpc.NewServer()
	srv := NewGRPCServer(gs, ":0")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan struct{})
	sec := &MockSecurityLayer{}
	sec.On("Listen", "tcp", ":0").Return(ln, nil).Run(func(args mock.Arguments) { close(done) })

	started := make(chan error, 1)
	go func() { started <- srv.Start(sec) }()
	<-done

	require.NoError(t, srv.Stop(context.Background()))
	require.NoError(t, <-started)
	sec.AssertExpectations(t)
}
