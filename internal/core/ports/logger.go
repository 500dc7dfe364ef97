package ports

// Logger defines the interface for logging. The resolver uses Info solely
// to report lock contention waits.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Error(err error)
}
