package cli

import (
	"fmt"
	"log/slog"

	"github.com/bidworks/docsync/internal/client/api"
	"github.com/bidworks/docsync/internal/client/iocli"
	"github.com/bidworks/docsync/internal/client/storage"
	syncsvc "github.com/bidworks/docsync/internal/client/sync"
)

type Cli struct {
	apiClient   *api.Client
	syncService syncsvc.Service
	authStore   storage.AuthStorage
	metadata    storage.MetadataStorage
	io          iocli.IO
	logger      *slog.Logger
	serverURL   string
}

func New(
	apiClient *api.Client,
	syncService syncsvc.Service,
	authStore storage.AuthStorage,
	metadata storage.MetadataStorage,
	io iocli.IO,
	logger *slog.Logger,
	serverURL string,
) *Cli {
	return &Cli{
		apiClient:   apiClient,
		syncService: syncService,
		authStore:   authStore,
		metadata:    metadata,
		io:          io,
		logger:      logger,
		serverURL:   serverURL,
	}
}

func PrintUsage() {
	fmt.Println("DocSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  docsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: docsync-client.db)")
	fmt.Println("  --log-level LVL  Log level: debug, info, warn, error (default: warn)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                          Save server credentials")
	fmt.Println("  logout                         Remove saved credentials")
	fmt.Println("  status [document-id]           Show sync status")
	fmt.Println("  edit <document-id> <file>      Record a local edit (JSON content, '-' for stdin)")
	fmt.Println("  pull <document-id>             Fetch server state into the local cache")
	fmt.Println("  sync <document-id>             Replay queued changes to the server")
	fmt.Println("  conflicts <document-id>        Show open conflicts")
	fmt.Println("  resolve <conflict-id> <src>    Resolve a conflict (local, server or a JSON file)")
	fmt.Println("  watch <document-id>            Monitor the connection and sync on reconnect")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  docsync login")
	fmt.Println("  docsync edit proposal-42 draft.json")
	fmt.Println("  docsync sync proposal-42")
	fmt.Println("  docsync conflicts proposal-42")
	fmt.Println("  docsync resolve b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 local")
	fmt.Println("  docsync --server https://example.com watch proposal-42")
}
