package main

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/sheikh-saqib/account-ledger/internal/config"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/account-ledger/internal/ledger"
	applog "github.com/sheikh-saqib/account-ledger/internal/log"
	"github.com/sheikh-saqib/account-ledger/internal/menu"
	"github.com/sheikh-saqib/account-ledger/internal/models"
	"github.com/sheikh-saqib/account-ledger/internal/storage/memory"
	"github.com/sheikh-saqib/account-ledger/internal/terminal"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout))
}

// run wires the ledger to the given console streams and returns the process exit code.
func run(in io.Reader, out io.Writer) int {
	config.LoadEnvFile()
	cfg := config.Load()

	logger := cfg.Logger().With(applog.FieldSessionID, uuid.NewString())
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		return 1
	}

	var store interfaces.LedgerStore = memory.NewMemoryLedgerStore(cfg.Opening())
	console := terminal.NewConsole(in, out)

	ledgerService := ledger.NewLedger(store, console, logger)
	loop := menu.NewLoop(ledgerService, console, logger)

	logger.Info("Session started", applog.FieldBalance, models.FormatAmount(store.Read()))
	if err := loop.Run(); err != nil {
		logger.Error("Session aborted", applog.FieldError, err)
		return 1
	}
	logger.Info("Session ended", applog.FieldBalance, models.FormatAmount(ledgerService.Balance()))
	return 0
}
