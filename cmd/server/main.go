package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"google.golang.org/grpc"

	"github.com/rl1809/inventory-occ/internal/adapter/handler"
	"github.com/rl1809/inventory-occ/internal/adapter/handler/pb"
	"github.com/rl1809/inventory-occ/internal/adapter/storage"
	"github.com/rl1809/inventory-occ/internal/core/domain"
	"github.com/rl1809/inventory-occ/internal/core/service"
	"github.com/rl1809/inventory-occ/internal/port"
)

const (
	httpPort        = ":8080"
	grpcPort        = ":50051"
	defaultMySQLDSN = "root:root@tcp(localhost:3306)/inventory?parseTime=true"
	workerCount     = 10
	queueSize       = 10000
	maxAttempts     = 5
	backoffBase     = 2 * time.Millisecond
	backoffCap      = 50 * time.Millisecond
	recordID        = "sku-1001"
	initialQuantity = 100
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = defaultMySQLDSN
	}

	// Initialize MySQL
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	mysqlAdapter := storage.NewMySQLAdapter(db)

	// Provision the demo record
	if err := mysqlAdapter.Seed(ctx, recordID, initialQuantity); err != nil {
		log.Fatalf("failed to seed record: %v", err)
	}
	log.Printf("seeded record: %s = %d", recordID, initialQuantity)

	// Initialize service
	updater := service.NewUpdater(mysqlAdapter, service.JitterBackoff(backoffBase, backoffCap))
	stockService := service.NewStockService(updater, maxAttempts, queueSize)

	// Start journal workers
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			journalLoop(id, stockService.Journal(), mysqlAdapter)
		}(i)
	}
	log.Printf("started %d journal workers", workerCount)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(stockService)
	pb.RegisterInventoryServiceServer(grpcServer, grpcHandler)

	// Start gRPC server
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(stockService)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/adjust", httpHandler.Adjust)

	httpServer := &http.Server{
		Addr:    httpPort,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpPort)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	// Stop HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Stop gRPC server
	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	// Close journal queue and wait for workers
	stockService.Close()
	wg.Wait()
	log.Println("journal workers stopped")

	// Close connections
	db.Close()
	log.Println("connections closed")
}

func journalLoop(id int, journal <-chan domain.Adjustment, repo port.JournalRepository) {
	for adj := range journal {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		// The adjustment is already committed in the store; a journal miss
		// loses an audit row, not inventory.
		if err := repo.CreateAdjustment(ctx, adj); err != nil {
			log.Printf("worker %d: failed to journal adjustment %s: %v", id, adj.ID, err)
		}

		cancel()
	}
}
