package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "inmocalc/http"
	"inmocalc/rates"
	"inmocalc/repository"
	"inmocalc/service"
)

func main() {
	addr := flag.String("addr", ":8080", "dirección de escucha")
	redisAddr := flag.String("redis", os.Getenv("REDIS_ADDR"), "dirección de Redis para el histórico (vacío: en memoria)")
	flag.Parse()

	var repo repository.CalculationRepository
	if *redisAddr != "" {
		repo = repository.NewCalculationRepositoryRedis(*redisAddr)
	} else {
		repo = repository.NewCalculationRepositoryMemory()
	}

	registry := rates.Default()

	mortgageHandler := httpLayer.NewMortgageHandler(service.NewMortgageService(repo))
	rentalHandler := httpLayer.NewRentalYieldHandler(service.NewRentalYieldService())
	transactionHandler := httpLayer.NewTransactionCostHandler(service.NewTransactionCostService(registry))
	rentUpdateHandler := httpLayer.NewRentUpdateHandler(service.NewRentUpdateService(registry))
	flipHandler := httpLayer.NewFlipHandler(service.NewFlipService())

	rateLimiter := httpLayer.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/calculadora/hipoteca",
		rateLimiter.Middleware(http.HandlerFunc(mortgageHandler.CalculateMortgage)),
	)
	mux.Handle(
		"/calculadora/rentabilidad",
		rateLimiter.Middleware(http.HandlerFunc(rentalHandler.CalculateRentalYield)),
	)
	mux.Handle(
		"/calculadora/gastos-compraventa",
		rateLimiter.Middleware(http.HandlerFunc(transactionHandler.CalculateTransactionCosts)),
	)
	mux.Handle(
		"/calculadora/actualizacion-renta",
		rateLimiter.Middleware(http.HandlerFunc(rentUpdateHandler.CalculateRentUpdate)),
	)
	mux.Handle(
		"/calculadora/flip",
		rateLimiter.Middleware(http.HandlerFunc(flipHandler.CalculateFlip)),
	)
	mux.Handle(
		"/calculadora/flip/sensibilidad",
		rateLimiter.Middleware(http.HandlerFunc(flipHandler.SensitivityAnalysis)),
	)

	server := &http.Server{
		Addr:         *addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🏠 API de calculadoras corriendo en http://localhost%s", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
