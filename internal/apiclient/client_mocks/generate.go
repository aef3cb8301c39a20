package client_mocks

//go:generate mockgen -source=../client.go -destination=client_mocks.go -package=client_mocks

// This file contains the go:generate directive to generate mocks for the
// API client interface. To regenerate the mocks, run:
//   go generate ./internal/apiclient/client_mocks
