// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_persistence.go -package=mocks github.com/fieldops/stock-transfers-service/internal/ports/gateway/persistence TransferRequestRepository,StockLedgerRepository,UnitOfWork
//go:generate mockgen -destination=mock_messaging.go -package=mocks github.com/fieldops/stock-transfers-service/internal/ports/gateway/messaging Notifier
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/fieldops/stock-transfers-service/internal/ports/gateway/platform Clock,IDGenerator,CodePairGenerator
//go:generate mockgen -destination=mock_settlement.go -package=mocks github.com/fieldops/stock-transfers-service/internal/ports/usecase/settlement Engine
