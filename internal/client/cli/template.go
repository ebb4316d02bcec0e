package cli

const quoteTemplate = `
"{{.Text}}"

    — {{.Author}} ({{.Category}})
`

const usageTemplate = `QuoteSync Client

Usage:
  quotesync [OPTIONS] COMMAND

Options:
  --version             Show version information
  --server URL          Remote quotes endpoint (default: https://jsonplaceholder.typicode.com/posts)
  --db PATH             Path to local database (default: quotesync-client.db)
  --limit N             Number of remote quotes fetched per sync (default: 10)
  --interval DURATION   Periodic sync interval for 'watch' (default: 30s)

Commands:
  add [TEXT AUTHOR CATEGORY]   Add a new quote (prompts when arguments omitted)
  list [CATEGORY]              List quotes, optionally filtered by category
  random [CATEGORY]            Show a random quote
  categories                   List known categories
  sync                         Run one synchronization cycle
  watch                        Synchronize periodically until interrupted
  conflicts                    Show the conflict history
  resolve INDEX local|remote   Re-resolve a recorded conflict
  status                       Show local store and sync status
  export [FILE]                Export all quotes as JSON (stdout by default)
  import FILE                  Import quotes from a JSON export
  seed                         Populate an empty store with starter quotes

Examples:
  quotesync add "Stay hungry" "Steve Jobs" Inspiration
  quotesync list Motivation
  quotesync sync
  quotesync --interval 10s watch
  quotesync resolve 0 local
  quotesync export quotes.json
`
