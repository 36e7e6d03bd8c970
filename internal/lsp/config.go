package lsp

// Config is read from the client's initializationOptions.
type Config struct {
	CheckerPath string `json:"checker_path"`
}
