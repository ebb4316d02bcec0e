package cli

import (
	"fmt"

	"github.com/iudanet/quotesync/internal/client/conflicts"
	"github.com/iudanet/quotesync/internal/client/data"
	"github.com/iudanet/quotesync/internal/client/iocli"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/sync"
)

type Cli struct {
	io          iocli.IO
	dataService data.Service
	syncService *sync.Service
	scheduler   *sync.Scheduler
	ledger      *conflicts.Ledger
	settings    storage.SettingsStorage
}

func New(
	io iocli.IO,
	dataService data.Service,
	syncService *sync.Service,
	scheduler *sync.Scheduler,
	ledger *conflicts.Ledger,
	settings storage.SettingsStorage,
) *Cli {
	return &Cli{
		io:          io,
		dataService: dataService,
		syncService: syncService,
		scheduler:   scheduler,
		ledger:      ledger,
		settings:    settings,
	}
}

func PrintUsage() {
	fmt.Print(usageTemplate)
}
