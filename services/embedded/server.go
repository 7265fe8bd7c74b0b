// Package embedded runs an in-process MySQL-compatible server backed by
// go-mysql-server's memory engine. It backs DB_EMBEDDED mode and the test
// suite, so the catalog keeps a single storage code path: GORM always talks
// MySQL wire protocol, whether the engine is external or in-process.
package embedded

import (
	"context"
	"fmt"
	"net"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"

	"connconfigapi/pkg/logger"
)

// Server is a temporary in-memory MySQL server owning one database.
type Server struct {
	srv    *server.Server
	Port   int
	DBName string
	cancel context.CancelFunc
}

// GetFreePort finds an available TCP port.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// Start launches an in-memory MySQL server holding an empty database with
// the given name and waits until it accepts TCP connections.
// Returns an error if no free port is available or the server does not come
// up within the readiness timeout.
func Start(ctx context.Context, dbName string) (*Server, error) {
	port, err := GetFreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	db := memory.NewDatabase(dbName)
	db.EnablePrimaryKeyIndexes()
	provider := memory.NewDBProvider(db)
	engine := sqle.NewDefault(provider)

	config := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}

	s, err := server.NewServer(config, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)

	// Goroutine cleanup strategy: cancel context triggers server shutdown
	go func() {
		if err := s.Start(); err != nil {
			logger.Errorf("Embedded MySQL server error: %v", err)
		}
	}()

	go func() {
		<-serverCtx.Done()
		if err := s.Close(); err != nil {
			logger.Warnf("Failed to close embedded MySQL server: %v", err)
		}
	}()

	// Poll server readiness with timeout to prevent indefinite blocking
	readyCtx, readyCancel := context.WithTimeout(ctx, 5*time.Second)
	defer readyCancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-readyCtx.Done():
			cancel()
			return nil, fmt.Errorf("embedded MySQL server failed to start within timeout: %w", readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", fmt.Sprintf("localhost:%d", port), 100*time.Millisecond)
			if err == nil {
				conn.Close()
				logger.Infof("Started embedded MySQL server on port %d (database %q)", port, dbName)
				return &Server{
					srv:    s,
					Port:   port,
					DBName: dbName,
					cancel: cancel,
				}, nil
			}
		}
	}
}

// DSN returns the GORM MySQL DSN for connecting to this server.
func (s *Server) DSN() string {
	return fmt.Sprintf("root@tcp(localhost:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", s.Port, s.DBName)
}

// Close shuts down the embedded server.
// Triggers context cancellation to cleanup background goroutines.
func (s *Server) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	if err := s.srv.Close(); err != nil {
		return fmt.Errorf("failed to close server: %w", err)
	}
	logger.Infof("Closed embedded MySQL server on port %d", s.Port)
	return nil
}
